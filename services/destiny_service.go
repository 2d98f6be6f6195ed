// file: services/destiny_service.go
package services

import (
	"math/rand"
)

// RollResult 一次命运检定的结果。Rolls 保留全部原始骰值供日志/审计
type RollResult struct {
	Final int   `json:"final"`
	Rolls []int `json:"rolls"`
}

// RollDestiny 投 d20 命运检定。advantage 为真时投两次取高（优势骰）。
// 生成器由调用方注入：生产传 utils.NewRand()，测试传固定种子
func RollDestiny(rng *rand.Rand, advantage bool) RollResult {
	roll1 := rng.Intn(20) + 1
	if !advantage {
		return RollResult{Final: roll1, Rolls: []int{roll1}}
	}

	roll2 := rng.Intn(20) + 1
	final := roll1
	if roll2 > final {
		final = roll2
	}
	return RollResult{Final: final, Rolls: []int{roll1, roll2}}
}

// IsCriticalFailure 仅 1 点为大失败，2-20 一律视为成功，没有中间档
func (r RollResult) IsCriticalFailure() bool {
	return r.Final == 1
}

// RollBloodCost 灾难发生时的"血债"骰（1d6），决定阵亡人数上限
func RollBloodCost(rng *rand.Rand) int {
	return rng.Intn(6) + 1
}
