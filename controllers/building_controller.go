// file: controllers/building_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/models"
	"GuildHall/utils"
	"github.com/gin-gonic/gin"
	"strconv"
)

// GetBuildingList 设施图鉴（按造价升序）
func GetBuildingList(c *gin.Context) {
	var buildings []models.Building
	if err := database.DB.Preload("Powers").Order("cost asc").Find(&buildings).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":     len(buildings),
		"buildings": buildings,
	})
}

// GetBuildingDetail 设施详情
func GetBuildingDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var building models.Building
	if err := database.DB.Preload("Powers").First(&building, id).Error; err != nil {
		utils.Error(c, 4004, "设施不存在")
		return
	}

	utils.Success(c, "success", building)
}

// CreateBuilding 主持人新增设施图鉴条目
func CreateBuilding(c *gin.Context) {
	var req struct {
		Name             string  `json:"name" binding:"required"`
		Slug             string  `json:"slug" binding:"required"`
		Description      string  `json:"description"`
		Cost             float64 `json:"cost"`
		SlotsRequired    int     `json:"slots_required"`
		MinLevelRequired int     `json:"min_level_required"`
		BonusGoldCap     bool    `json:"bonus_gold_cap"`
		BonusMemberSlots bool    `json:"bonus_member_slots"`
		BonusHealing     bool    `json:"bonus_healing"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.Building
	if err := database.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		utils.Error(c, 4001, "slug 已存在")
		return
	}

	building := models.Building{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		Cost:             req.Cost,
		SlotsRequired:    req.SlotsRequired,
		MinLevelRequired: req.MinLevelRequired,
		BonusGoldCap:     req.BonusGoldCap,
		BonusMemberSlots: req.BonusMemberSlots,
		BonusHealing:     req.BonusHealing,
	}
	if building.SlotsRequired <= 0 {
		building.SlotsRequired = 1
	}
	if building.MinLevelRequired <= 0 {
		building.MinLevelRequired = 1
	}

	if err := database.DB.Create(&building).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Building created successfully", gin.H{"id": building.ID, "slug": building.Slug})
}
