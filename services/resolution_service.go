// file: services/resolution_service.go
package services

import (
	"GuildHall/models"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"math/rand"
	"strings"
)

// DelegationResult 委派结算结果
type DelegationResult struct {
	Outcome   string   `json:"outcome"` // SUCCESS / DISASTER
	Roll      int      `json:"roll"`
	Rolls     []int    `json:"rolls"`
	DeadCount int      `json:"dead_count,omitempty"`
	Victims   []string `json:"victims,omitempty"`
}

// DispatchResult 派遣结算结果
type DispatchResult struct {
	Outcome   string   `json:"outcome"`
	Roll      int      `json:"roll"`
	Rolls     []int    `json:"rolls"`
	Advantage bool     `json:"advantage"`
	Deaths    int      `json:"deaths"`
	DeadNames []string `json:"dead_names"`
}

// CompleteQuest 任务结算：发放经验与金币（走账本，金币受金库上限夹断），
// 置为 COMPLETED。对已终态任务是幂等空操作——状态与资金均不再变动
func CompleteQuest(tx *gorm.DB, quest *models.Quest) error {
	if quest.IsTerminal() {
		return nil
	}

	// 资金与经验是读-改-写，行锁防止并发结算互相覆盖
	var guild models.Guild
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&guild, quest.GuildID).Error; err != nil {
		return err
	}

	if err := AddExperience(tx, &guild, quest.GXPReward); err != nil {
		return err
	}
	if _, err := AddFunds(tx, &guild, quest.GoldReward); err != nil {
		return err
	}

	quest.Status = models.QuestStatusCompleted
	return tx.Model(quest).Update("status", models.QuestStatusCompleted).Error
}

// ResolveDelegation 委派任务的命运检定结算。
// 调用方负责事前校验（任务状态可委派、成员归属本公会）并把本函数放进事务；
// 运作成本在检定前扣除，即使清空金库也不在此层拦截
func ResolveDelegation(tx *gorm.DB, quest *models.Quest, rng *rand.Rand) (*DelegationResult, error) {
	var guild models.Guild
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&guild, quest.GuildID).Error; err != nil {
		return nil, err
	}

	hasWarRoom := HasBuildingSlug(tx, guild.ID, models.SlugWarRoom)
	hasArsenal := HasBuildingSlug(tx, guild.ID, models.SlugArsenal)

	cost := quest.OperationalCost
	if hasArsenal {
		cost = Round2(cost * 0.8) // 军械库：成本 -20%
	}
	if _, err := RemoveFunds(tx, &guild, cost); err != nil {
		return nil, err
	}

	roll := RollDestiny(rng, hasWarRoom)

	if roll.IsCriticalFailure() {
		quest.Status = models.QuestStatusDisaster
		if err := tx.Model(quest).Update("status", models.QuestStatusDisaster).Error; err != nil {
			return nil, err
		}

		// 血债骰决定阵亡上限，候选池为该任务的全部受派成员
		bloodCost := RollBloodCost(rng)
		var pool []models.Member
		if err := tx.Model(quest).Association("AssignedMembers").Find(&pool); err != nil {
			return nil, err
		}

		victims, err := SelectVictims(tx, pool, bloodCost, rng)
		if err != nil {
			return nil, err
		}
		names := VictimNames(victims)

		result := &DelegationResult{
			Outcome:   "DISASTER",
			Roll:      roll.Final,
			Rolls:     roll.Rolls,
			DeadCount: len(victims),
			Victims:   names,
		}
		if err := AppendChronicle(tx, models.Chronicle{
			GuildID:     guild.ID,
			Kind:        models.ChronicleKindDelegation,
			SubjectName: quest.Title,
			Rank:        quest.Rank,
			Outcome:     "DISASTER",
			Roll:        roll.Final,
			Deaths:      len(victims),
			DeadNames:   strings.Join(names, ", "),
		}); err != nil {
			return nil, err
		}
		return result, nil
	}

	// 2-20 一律成功
	if err := CompleteQuest(tx, quest); err != nil {
		return nil, err
	}
	result := &DelegationResult{Outcome: "SUCCESS", Roll: roll.Final, Rolls: roll.Rolls}
	if err := AppendChronicle(tx, models.Chronicle{
		GuildID:     guild.ID,
		Kind:        models.ChronicleKindDelegation,
		SubjectName: quest.Title,
		Rank:        quest.Rank,
		Outcome:     "SUCCESS",
		Roll:        roll.Final,
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveDispatch 派遣结算。非 PENDING 或缺少公会上下文时静默返回 nil
// （由创建接口负责拦截畸形数据，结算层不抛错）
func ResolveDispatch(tx *gorm.DB, dispatch *models.Dispatch, rng *rand.Rand) (*DispatchResult, error) {
	if dispatch.Status != models.DispatchStatusPending {
		return nil, nil
	}

	// 公会上下文：小队优先，其次任务，两者皆无则无法结算
	var squad *models.Squad
	var mission *models.Quest
	var guildID uint32
	var subject string

	if dispatch.SquadID != nil {
		squad = &models.Squad{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(squad, *dispatch.SquadID).Error; err != nil {
			return nil, err
		}
		guildID = squad.GuildID
		subject = squad.Name
	} else if dispatch.MissionID != nil {
		mission = &models.Quest{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(mission, *dispatch.MissionID).Error; err != nil {
			return nil, err
		}
		guildID = mission.GuildID
		subject = mission.Title
	} else {
		return nil, nil
	}

	advantage := HasBuildingSlug(tx, guildID, models.SlugCartographyRoom, models.SlugWarRoom)
	roll := RollDestiny(rng, advantage)

	result := &DispatchResult{
		Roll:      roll.Final,
		Rolls:     roll.Rolls,
		Advantage: advantage,
		DeadNames: []string{},
	}

	if roll.IsCriticalFailure() {
		dispatch.Status = models.DispatchStatusDisaster
		result.Outcome = "DISASTER"

		var deaths int
		var pool []models.Member
		if squad != nil {
			deaths = RollBloodCost(rng)
			if err := tx.Where("squad_id = ? AND status = ?", squad.ID, models.MemberStatusActive).
				Find(&pool).Error; err != nil {
				return nil, err
			}
		} else {
			deaths = dispatch.NPCCount
			if err := tx.Where("guild_id = ? AND status = ?", guildID, models.MemberStatusActive).
				Find(&pool).Error; err != nil {
				return nil, err
			}
		}

		victims, err := SelectVictims(tx, pool, deaths, rng)
		if err != nil {
			return nil, err
		}
		result.Deaths = len(victims)
		result.DeadNames = VictimNames(victims)

		dispatch.ResultLog = fmt.Sprintf("掷骰 %d（大失败）。阵亡 %d 人：%s",
			roll.Final, result.Deaths, strings.Join(result.DeadNames, ", "))

		if mission != nil {
			mission.Status = models.QuestStatusDisaster
			if err := tx.Model(mission).Update("status", models.QuestStatusDisaster).Error; err != nil {
				return nil, err
			}
		}
	} else {
		dispatch.Status = models.DispatchStatusCompleted
		result.Outcome = "COMPLETED"

		if squad != nil {
			rank := dispatch.Rank
			if rank == "" {
				rank = models.QuestRankF
			}

			// 生成内部存档任务并走常规结算路径发放奖励
			internal := models.Quest{
				Title:        fmt.Sprintf("派遣行动：%s（%s 级）", squad.Name, rank),
				Description:  fmt.Sprintf("由小队 %s 自动执行的派遣任务。", squad.Name),
				Type:         models.QuestTypeInternal,
				Status:       models.QuestStatusInProgress,
				Rank:         rank,
				DurationDays: dispatch.DurationDays,
				GuildID:      guildID,
			}
			if err := tx.Create(&internal).Error; err != nil {
				return nil, err
			}

			var squadMembers []models.Member
			if err := tx.Where("squad_id = ?", squad.ID).Find(&squadMembers).Error; err != nil {
				return nil, err
			}
			if len(squadMembers) > 0 {
				if err := tx.Model(&internal).Association("AssignedMembers").Append(&squadMembers); err != nil {
					return nil, err
				}
			}

			if err := CompleteQuest(tx, &internal); err != nil {
				return nil, err
			}

			squad.MissionsCompleted++
			if err := tx.Model(squad).Update("missions_completed", squad.MissionsCompleted).Error; err != nil {
				return nil, err
			}
			if err := CheckRankProgression(tx, squad); err != nil {
				return nil, err
			}
		} else {
			if err := CompleteQuest(tx, mission); err != nil {
				return nil, err
			}
		}

		dispatch.ResultLog = fmt.Sprintf("掷骰 %d。行动成功，奖励已入账。", roll.Final)
	}

	if err := tx.Model(dispatch).Updates(map[string]interface{}{
		"status":     dispatch.Status,
		"result_log": dispatch.ResultLog,
	}).Error; err != nil {
		return nil, err
	}

	if err := AppendChronicle(tx, models.Chronicle{
		GuildID:     guildID,
		Kind:        models.ChronicleKindDispatch,
		SubjectName: subject,
		Rank:        dispatch.Rank,
		Outcome:     result.Outcome,
		Roll:        roll.Final,
		Deaths:      result.Deaths,
		DeadNames:   strings.Join(result.DeadNames, ", "),
	}); err != nil {
		return nil, err
	}

	return result, nil
}
