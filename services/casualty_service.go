// file: services/casualty_service.go
package services

import (
	"GuildHall/models"
	"gorm.io/gorm"
	"math/rand"
)

// SelectVictims 从候选成员中随机抽取至多 count 名阵亡者并落库为 DECEASED。
// 每次调用对候选池做一次全新的无偏洗牌后取前 N 个；候选池为空时返回空切片。
// DECEASED 为终态，此操作在引擎内不可逆
func SelectVictims(tx *gorm.DB, pool []models.Member, count int, rng *rand.Rand) ([]models.Member, error) {
	if count <= 0 || len(pool) == 0 {
		return []models.Member{}, nil
	}

	shuffled := make([]models.Member, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	victims := shuffled[:count]

	for i := range victims {
		victims[i].Status = models.MemberStatusDeceased
		if err := tx.Model(&victims[i]).Update("status", models.MemberStatusDeceased).Error; err != nil {
			return nil, err
		}
	}
	return victims, nil
}

// VictimNames 提取阵亡名单（日志用）
func VictimNames(victims []models.Member) []string {
	names := make([]string, 0, len(victims))
	for _, v := range victims {
		names = append(names, v.Name)
	}
	return names
}
