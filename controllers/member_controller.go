// file: controllers/member_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/models"
	"GuildHall/services"
	"GuildHall/utils"
	"github.com/gin-gonic/gin"
	"strconv"
)

// CreateMember 招募成员（受宿舍名额限制）
func CreateMember(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		GuildID uint32  `json:"guild_id" binding:"required"`
		SquadID *uint32 `json:"squad_id"`
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

	maxSlots := services.MaxMemberSlots(database.DB, &guild)

	var activeCount int64
	database.DB.Model(&models.Member{}).
		Where("guild_id = ? AND status <> ?", guild.ID, models.MemberStatusDeceased).
		Count(&activeCount)
	if int(activeCount) >= maxSlots {
		utils.Error(c, 3001, "宿舍已满，无法招募新成员")
		return
	}

	if req.SquadID != nil {
		var squad models.Squad
		if err := database.DB.First(&squad, *req.SquadID).Error; err != nil || squad.GuildID != guild.ID {
			utils.Error(c, 4001, "小队无效")
			return
		}
	}

	member := models.Member{
		Name:    req.Name,
		GuildID: guild.ID,
		SquadID: req.SquadID,
		Status:  models.MemberStatusActive,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		utils.Error(c, 5000, "创建成员失败: "+err.Error())
		return
	}

	utils.Success(c, "成员已招募", gin.H{"id": member.ID})
}

// ListMembers 成员列表，可按公会/小队/状态过滤
func ListMembers(c *gin.Context) {
	db := database.DB.Model(&models.Member{})
	if guildID := c.Query("guild_id"); guildID != "" {
		db = db.Where("guild_id = ?", guildID)
	}
	if squadID := c.Query("squad_id"); squadID != "" {
		db = db.Where("squad_id = ?", squadID)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var members []models.Member
	if err := db.Order("id asc").Find(&members).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":   len(members),
		"members": members,
	})
}

// UpdateMemberStatus 更改成员状态（阵亡为终态）
func UpdateMemberStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var member models.Member
	if err := database.DB.First(&member, id).Error; err != nil {
		utils.Error(c, 4004, "成员不存在")
		return
	}

	var req struct {
		Status models.MemberStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	switch req.Status {
	case models.MemberStatusActive, models.MemberStatusInjured, models.MemberStatusRetired, models.MemberStatusDeceased:
	default:
		utils.Error(c, 1002, "未知状态")
		return
	}

	if member.Status == models.MemberStatusDeceased {
		utils.Error(c, 3001, "阵亡成员无法更改状态")
		return
	}

	if err := database.DB.Model(&member).Update("status", req.Status).Error; err != nil {
		utils.Error(c, 5000, "保存失败")
		return
	}
	utils.Success(c, "状态已更新", nil)
}

// AssignMemberSquad 调整成员所属小队
func AssignMemberSquad(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var member models.Member
	if err := database.DB.First(&member, id).Error; err != nil {
		utils.Error(c, 4004, "成员不存在")
		return
	}

	var req struct {
		SquadID *uint32 `json:"squad_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.SquadID != nil {
		var squad models.Squad
		if err := database.DB.First(&squad, *req.SquadID).Error; err != nil || squad.GuildID != member.GuildID {
			utils.Error(c, 4001, "小队无效")
			return
		}
	}

	if err := database.DB.Model(&member).Update("squad_id", req.SquadID).Error; err != nil {
		utils.Error(c, 5000, "保存失败")
		return
	}
	utils.Success(c, "成员已调动", nil)
}
