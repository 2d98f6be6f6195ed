// file: services/chronicle_service.go
package services

import (
	"GuildHall/database"
	"GuildHall/models"
	"encoding/json"
	"fmt"
	"gorm.io/gorm"
	"log"
	"time"
)

const chronicleKeepCount = 5000

// AppendChronicle 向编年史追加一条结算记录，并裁剪超量的旧记录，
// 只保留最新的 5000 条
func AppendChronicle(tx *gorm.DB, entry models.Chronicle) error {
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&models.Chronicle{}).Count(&count).Error; err != nil {
		return err
	}
	if count > chronicleKeepCount {
		// MySQL 不允许 IN 子查询直接带 LIMIT，套一层派生表；同一时刻的
		// 记录以 id 兜底排序
		return tx.Exec(
			"DELETE FROM guildhall_chronicle WHERE id NOT IN ("+
				"SELECT id FROM (SELECT id FROM guildhall_chronicle ORDER BY logged_at desc, id desc LIMIT ?) newest)",
			chronicleKeepCount,
		).Error
	}
	return nil
}

// RankStat 某一任务级别的完成数
type RankStat struct {
	Rank  models.QuestRank `json:"rank"`
	Count int64            `json:"count"`
}

// GetQuestRankStats 统计公会各级别已完成任务数，走 Redis 短缓存。
// 缓存 15 秒，保证统计面板的准实时性即可
func GetQuestRankStats(guildID uint32) []RankStat {
	cacheKey := fmt.Sprintf("chronicle:stats:%d", guildID)
	val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
	if err == nil {
		var cached []RankStat
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached
		}
	}

	type row struct {
		Rank  models.QuestRank
		Count int64
	}
	var rows []row
	database.DB.Model(&models.Quest{}).
		Select("`rank`, COUNT(*) as count").
		Where("guild_id = ? AND status = ?", guildID, models.QuestStatusCompleted).
		Group("`rank`").
		Scan(&rows)

	counts := make(map[models.QuestRank]int64, len(rows))
	for _, r := range rows {
		counts[r.Rank] = r.Count
	}

	// 补全全部级别，未完成过的记 0
	allRanks := []models.QuestRank{
		models.QuestRankF, models.QuestRankE, models.QuestRankD, models.QuestRankC,
		models.QuestRankB, models.QuestRankA, models.QuestRankS,
	}
	stats := make([]RankStat, 0, len(allRanks))
	for _, r := range allRanks {
		stats = append(stats, RankStat{Rank: r, Count: counts[r]})
	}

	jsonData, err := json.Marshal(stats)
	if err == nil {
		database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
	} else {
		log.Printf("Failed to marshal chronicle stats for cache: %v", err)
	}

	return stats
}

// InvalidateQuestRankStats 结算后清掉统计缓存，下次查询回源
func InvalidateQuestRankStats(guildID uint32) {
	cacheKey := fmt.Sprintf("chronicle:stats:%d", guildID)
	database.RDB.Del(database.Ctx, cacheKey)
}
