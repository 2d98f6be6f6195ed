// file: controllers/guild_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/dto"
	"GuildHall/models"
	"GuildHall/services"
	"GuildHall/utils"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"strconv"
)

// 事务内校验失败的哨兵错误，映射为业务错误码而非 5000
var (
	errVaultFull         = errors.New("vault full")
	errInsufficientFunds = errors.New("insufficient funds")
)

// CreateGuild 创建公会，分享码自动生成且全局唯一
func CreateGuild(c *gin.Context) {
	var req dto.CreateGuildReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	// 生成唯一分享码（格式 XXX-0000，撞码重试）
	var code string
	for {
		code = utils.GenerateGuildCode()
		var existing models.Guild
		if err := database.DB.Where("code = ?", code).First(&existing).Error; err != nil {
			break
		}
	}

	guild := models.Guild{
		Name:        req.Name,
		Code:        code,
		Description: req.Motto,
	}
	if req.Emblem != "" {
		guild.Emblem = req.Emblem
	} else {
		guild.Emblem = "swords"
	}
	if req.LegalStatus != "" {
		guild.LegalStatus = models.GuildLegalStatus(req.LegalStatus)
	} else {
		guild.LegalStatus = models.LegalStatusIndependent
	}
	if req.MoralAlignment != "" {
		guild.MoralAlignment = models.GuildMoralAlignment(req.MoralAlignment)
	} else {
		guild.MoralAlignment = models.AlignmentHumanitarian
	}

	if err := database.DB.Create(&guild).Error; err != nil {
		utils.Error(c, 5000, "创建公会失败: "+err.Error())
		return
	}

	utils.Success(c, "Guild created successfully", gin.H{"id": guild.ID, "code": guild.Code})
}

// GetGuildDashboard 公会总览：基础字段 + 由等级和设施推出的容量
func GetGuildDashboard(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var guild models.Guild
	if err := database.DB.First(&guild, id).Error; err != nil {
		utils.Error(c, 4004, "公会不存在")
		return
	}

	var owned []models.GuildBuilding
	database.DB.Preload("Building").Where("guild_id = ?", guild.ID).Order("built_at desc").Find(&owned)

	buildings := make([]dto.GuildBuildingResp, 0, len(owned))
	for _, gb := range owned {
		buildings = append(buildings, dto.GuildBuildingResp{
			ID:      gb.ID,
			Name:    gb.Building.Name,
			Slug:    gb.Building.Slug,
			BuiltAt: gb.BuiltAt.Format("2006-01-02 15:04:05"),
		})
	}

	resp := dto.GuildDashboardResp{
		ID:                     guild.ID,
		Name:                   guild.Name,
		Code:                   guild.Code,
		Emblem:                 guild.Emblem,
		Level:                  guild.Level,
		GXP:                    guild.GXP,
		Funds:                  guild.Funds,
		InfluencePoints:        guild.InfluencePoints,
		Description:            guild.Description,
		LegalStatus:            string(guild.LegalStatus),
		MoralAlignment:         string(guild.MoralAlignment),
		MaxGoldCap:             services.MaxGoldCap(database.DB, &guild),
		MaxMemberSlots:         services.MaxMemberSlots(database.DB, &guild),
		UsedBuildingSlots:      services.UsedBuildingSlots(database.DB, guild.ID),
		AvailableBuildingSlots: services.AvailableBuildingSlots(database.DB, &guild),
		ActiveBuildings:        buildings,
	}

	utils.Success(c, "success", resp)
}

// UpdateGuildConfig 更新公会法律地位与道德倾向
func UpdateGuildConfig(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var guild models.Guild
	if err := database.DB.First(&guild, id).Error; err != nil {
		utils.Error(c, 4004, "公会不存在")
		return
	}

	var req dto.UpdateGuildConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	guild.LegalStatus = models.GuildLegalStatus(req.LegalStatus)
	guild.MoralAlignment = models.GuildMoralAlignment(req.MoralAlignment)
	if err := database.DB.Save(&guild).Error; err != nil {
		utils.Error(c, 5000, "保存失败")
		return
	}

	utils.Success(c, "公会配置已更新", nil)
}

// ManageGold 金库手动增减：入账夹断到上限、出账夹断到零，夹断是正常结果
func ManageGold(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var guild models.Guild
	if err := database.DB.First(&guild, id).Error; err != nil {
		utils.Error(c, 4004, "公会不存在")
		return
	}

	var req dto.ManageGoldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	if req.Amount < 0 {
		utils.Error(c, 1002, "金额必须为正数")
		return
	}

	// 资金读-改-写：锁行后在事务内完成，防止并发操作互相覆盖
	switch req.Operation {
	case "add":
		var result services.LedgerResult
		var goldCap float64
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&guild, guild.ID).Error; err != nil {
				return err
			}
			goldCap = services.MaxGoldCap(tx, &guild)
			if guild.Funds >= goldCap {
				return errVaultFull
			}
			var err error
			result, err = services.AddFunds(tx, &guild, req.Amount)
			return err
		})
		if errors.Is(err, errVaultFull) {
			utils.Error(c, 3001, "金库已满！")
			return
		}
		if err != nil {
			utils.Error(c, 5000, "入账失败: "+err.Error())
			return
		}
		msg := fmt.Sprintf("%.2f T$ 已存入金库。", req.Amount)
		if result.Clamped {
			msg = fmt.Sprintf("已存入金库。（受上限 %.2f T$ 限制）", goldCap)
		}
		utils.Success(c, msg, gin.H{"funds": result.Funds, "clamped": result.Clamped})

	case "remove":
		var result services.LedgerResult
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&guild, guild.ID).Error; err != nil {
				return err
			}
			var err error
			result, err = services.RemoveFunds(tx, &guild, req.Amount)
			return err
		})
		if err != nil {
			utils.Error(c, 5000, "出账失败: "+err.Error())
			return
		}
		msg := fmt.Sprintf("%.2f T$ 已从金库取出。", req.Amount)
		if result.Clamped {
			msg = "已从金库取出。（资金清零）"
		}
		utils.Success(c, msg, gin.H{"funds": result.Funds, "clamped": result.Clamped})

	default:
		utils.Error(c, 1001, "operation 取值无效（add/remove）")
	}
}

// ConstructBuilding 建造设施：等级 / 资金 / 建造位三重校验后扣款落位。
// 建造是唯一带"买得起"前置检查的资金出口，任务结算不做此检查
func ConstructBuilding(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var guild models.Guild
	if err := database.DB.First(&guild, id).Error; err != nil {
		utils.Error(c, 4004, "公会不存在")
		return
	}

	var req dto.ConstructBuildingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var building models.Building
	if err := database.DB.Where("slug = ?", req.BuildingSlug).First(&building).Error; err != nil {
		utils.Error(c, 4001, "设施不存在")
		return
	}

	if guild.Level < building.MinLevelRequired {
		utils.Error(c, 3002, "公会等级不足")
		return
	}
	if guild.Funds < building.Cost {
		utils.Error(c, 3003, "资金不足")
		return
	}
	if services.AvailableBuildingSlots(database.DB, &guild) < building.SlotsRequired {
		utils.Error(c, 3004, "会所空间不足")
		return
	}

	var existing models.GuildBuilding
	if err := database.DB.Where("guild_id = ? AND building_id = ?", guild.ID, building.ID).
		First(&existing).Error; err == nil {
		utils.Error(c, 3005, "该设施已建造")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 锁行后复核资金，避免并发扣款透支
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&guild, guild.ID).Error; err != nil {
			return err
		}
		if guild.Funds < building.Cost {
			return errInsufficientFunds
		}
		if _, err := services.RemoveFunds(tx, &guild, building.Cost); err != nil {
			return err
		}
		return tx.Create(&models.GuildBuilding{GuildID: guild.ID, BuildingID: building.ID}).Error
	})
	if errors.Is(err, errInsufficientFunds) {
		utils.Error(c, 3003, "资金不足")
		return
	}
	if err != nil {
		utils.Error(c, 5000, "建造失败: "+err.Error())
		return
	}

	utils.Success(c, fmt.Sprintf("设施 %s 建造完成", building.Name), gin.H{"funds": guild.Funds})
}
