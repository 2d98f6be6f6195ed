// file: controllers/squad_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/models"
	"GuildHall/utils"
	"github.com/gin-gonic/gin"
	"strconv"
)

// --- 小队 ---

// CreateSquad 新建小队，默认授予最低一级军衔
func CreateSquad(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		GuildID uint32 `json:"guild_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var guild models.Guild
	if err := database.DB.First(&guild, req.GuildID).Error; err != nil {
		utils.Error(c, 4004, "公会不存在")
		return
	}

	squad := models.Squad{Name: req.Name, GuildID: guild.ID}

	var initialRank models.SquadRank
	if err := database.DB.Order("rank_order asc").First(&initialRank).Error; err == nil {
		squad.RankID = &initialRank.ID
	}

	if err := database.DB.Create(&squad).Error; err != nil {
		utils.Error(c, 5000, "创建小队失败: "+err.Error())
		return
	}

	utils.Success(c, "小队已创建", gin.H{"id": squad.ID, "rank_id": squad.RankID})
}

// ListSquads 小队列表（军衔降序）
func ListSquads(c *gin.Context) {
	db := database.DB.Model(&models.Squad{}).Preload("Rank")
	if guildID := c.Query("guild_id"); guildID != "" {
		db = db.Where("guild_id = ?", guildID)
	}

	var squads []models.Squad
	if err := db.Find(&squads).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":  len(squads),
		"squads": squads,
	})
}

// UpdateSquad 修改小队名称或手动改衔
func UpdateSquad(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var squad models.Squad
	if err := database.DB.First(&squad, id).Error; err != nil {
		utils.Error(c, 4004, "小队不存在")
		return
	}

	var req struct {
		Name   string  `json:"name"`
		RankID *uint32 `json:"rank_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.Name != "" {
		squad.Name = req.Name
	}
	if req.RankID != nil {
		var rank models.SquadRank
		if err := database.DB.First(&rank, *req.RankID).Error; err != nil {
			utils.Error(c, 4001, "军衔不存在")
			return
		}
		squad.RankID = req.RankID
	}

	if err := database.DB.Save(&squad).Error; err != nil {
		utils.Error(c, 5000, "保存失败")
		return
	}
	utils.Success(c, "小队已更新", nil)
}

// DeleteSquad 解散小队（成员的 squad_id 置空）
func DeleteSquad(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	database.DB.Model(&models.Member{}).Where("squad_id = ?", id).Update("squad_id", nil)
	if err := database.DB.Delete(&models.Squad{}, id).Error; err != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	utils.Success(c, "小队已解散", nil)
}

// --- 军衔阶梯 ---

// CreateSquadRank 新增军衔
func CreateSquadRank(c *gin.Context) {
	var req struct {
		Name             string `json:"name" binding:"required"`
		Order            int    `json:"order"`
		MissionsRequired int    `json:"missions_required"`
		MinGuildLevel    int    `json:"min_guild_level"`
		Description      string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.SquadRank
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Error(c, 4001, "军衔名称已存在")
		return
	}

	rank := models.SquadRank{
		Name:             req.Name,
		Order:            req.Order,
		MissionsRequired: req.MissionsRequired,
		MinGuildLevel:    req.MinGuildLevel,
		Description:      req.Description,
	}
	if rank.MinGuildLevel <= 0 {
		rank.MinGuildLevel = 1
	}

	if err := database.DB.Create(&rank).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "军衔已创建", gin.H{"id": rank.ID})
}

// ListSquadRanks 军衔阶梯（升序）
func ListSquadRanks(c *gin.Context) {
	var ranks []models.SquadRank
	if err := database.DB.Order("rank_order asc").Find(&ranks).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}
	utils.Success(c, "success", gin.H{"total": len(ranks), "ranks": ranks})
}

// UpdateSquadRank 修改军衔参数
func UpdateSquadRank(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var rank models.SquadRank
	if err := database.DB.First(&rank, id).Error; err != nil {
		utils.Error(c, 4004, "军衔不存在")
		return
	}

	var req struct {
		Name             string `json:"name"`
		Order            *int   `json:"order"`
		MissionsRequired *int   `json:"missions_required"`
		MinGuildLevel    *int   `json:"min_guild_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.Name != "" {
		rank.Name = req.Name
	}
	if req.Order != nil {
		rank.Order = *req.Order
	}
	if req.MissionsRequired != nil {
		rank.MissionsRequired = *req.MissionsRequired
	}
	if req.MinGuildLevel != nil {
		rank.MinGuildLevel = *req.MinGuildLevel
	}

	if err := database.DB.Save(&rank).Error; err != nil {
		utils.Error(c, 5000, "保存失败")
		return
	}
	utils.Success(c, "军衔已更新", nil)
}

// DeleteSquadRank 删除军衔（使用中则拒绝）
func DeleteSquadRank(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var inUse int64
	database.DB.Model(&models.Squad{}).Where("rank_id = ?", id).Count(&inUse)
	if inUse > 0 {
		utils.Error(c, 3001, "军衔使用中，无法删除")
		return
	}

	if err := database.DB.Delete(&models.SquadRank{}, id).Error; err != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	utils.Success(c, "军衔已删除", nil)
}
