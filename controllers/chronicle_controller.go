// file: controllers/chronicle_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/models"
	"GuildHall/services"
	"GuildHall/utils"
	"github.com/gin-gonic/gin"
	"strconv"
)

// ListChronicle 编年史（最新在前）
func ListChronicle(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}

	db := database.DB.Model(&models.Chronicle{})
	if guildID := c.Query("guild_id"); guildID != "" {
		db = db.Where("guild_id = ?", guildID)
	}
	if kind := c.Query("kind"); kind != "" {
		db = db.Where("kind = ?", kind)
	}

	var entries []models.Chronicle
	if err := db.Order("logged_at desc").Limit(limit).Find(&entries).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":   len(entries),
		"entries": entries,
	})
}

// GetQuestRankStats 按等级统计已完成委托数量（带缓存）
func GetQuestRankStats(c *gin.Context) {
	guildID, err := strconv.Atoi(c.Query("guild_id"))
	if err != nil || guildID <= 0 {
		utils.Error(c, 1001, "guild_id 无效")
		return
	}

	stats := services.GetQuestRankStats(uint32(guildID))
	utils.Success(c, "success", gin.H{"stats": stats})
}
