// file: services/rank_service.go
package services

import (
	"GuildHall/models"
	"errors"
	"gorm.io/gorm"
)

// CheckRankProgression 评估小队晋升。
// 规则：在所有 order 严格高于当前军衔、且任务数 / 公会等级门槛均满足的军衔中，
// 取 order 最大的一个——允许一次跨越多级，但绝不降衔。
// 小队尚未定衔时不做任何评估（必须先由主持人指定初始军衔）
func CheckRankProgression(tx *gorm.DB, squad *models.Squad) error {
	if squad.RankID == nil {
		return nil
	}

	var current models.SquadRank
	if err := tx.First(&current, *squad.RankID).Error; err != nil {
		return err
	}

	var guild models.Guild
	if err := tx.First(&guild, squad.GuildID).Error; err != nil {
		return err
	}

	var next models.SquadRank
	err := tx.Where("rank_order > ? AND missions_required <= ? AND min_guild_level <= ?",
		current.Order, squad.MissionsCompleted, guild.Level).
		Order("rank_order desc").
		First(&next).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // 没有更高的可达军衔，维持现状
		}
		return err
	}

	squad.RankID = &next.ID
	squad.Rank = &next
	return tx.Model(squad).Update("rank_id", next.ID).Error
}
