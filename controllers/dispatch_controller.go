// file: controllers/dispatch_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/dto"
	"GuildHall/models"
	"GuildHall/services"
	"GuildHall/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"strconv"
)

// CreateDispatch 创建派遣。squad_id / mission_id 必须恰好提供一个，
// 畸形组合在这里拦截，结算层只对漏网数据做静默空操作
func CreateDispatch(c *gin.Context) {
	var req dto.CreateDispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if (req.SquadID == nil) == (req.MissionID == nil) {
		utils.Error(c, 1002, "squad_id 与 mission_id 必须二选一")
		return
	}
	if req.DurationDays <= 0 {
		req.DurationDays = 1
	}

	dispatch := models.Dispatch{
		DurationDays: req.DurationDays,
		Status:       models.DispatchStatusPending,
		OpTag:        utils.GenerateOpTag(),
	}

	if req.SquadID != nil {
		var squad models.Squad
		if err := database.DB.First(&squad, *req.SquadID).Error; err != nil {
			utils.Error(c, 4004, "小队不存在")
			return
		}
		dispatch.SquadID = req.SquadID
		if req.Rank != "" {
			dispatch.Rank = models.QuestRank(req.Rank)
		} else {
			dispatch.Rank = models.QuestRankF
		}

		if err := database.DB.Create(&dispatch).Error; err != nil {
			utils.Error(c, 5000, "创建派遣失败: "+err.Error())
			return
		}
		utils.Success(c, "小队派遣已创建", gin.H{"id": dispatch.ID, "op_tag": dispatch.OpTag})
		return
	}

	// NPC 委托模式
	var mission models.Quest
	if err := database.DB.First(&mission, *req.MissionID).Error; err != nil {
		utils.Error(c, 4004, "任务不存在")
		return
	}
	if mission.Status != models.QuestStatusOpen && mission.Status != models.QuestStatusInProgress {
		utils.Error(c, 3001, "当前状态下任务不可委托")
		return
	}

	var activeCount int64
	database.DB.Model(&models.Member{}).
		Where("guild_id = ? AND status = ?", mission.GuildID, models.MemberStatusActive).
		Count(&activeCount)

	if req.NPCCount <= 0 {
		utils.Error(c, 1003, "NPC 数量无效")
		return
	}
	if int64(req.NPCCount) > activeCount {
		utils.Error(c, 1003, "NPC 数量超过在册活跃成员数")
		return
	}

	dispatch.MissionID = req.MissionID
	dispatch.NPCCount = req.NPCCount
	dispatch.Rank = mission.Rank

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dispatch).Error; err != nil {
			return err
		}
		mission.Status = models.QuestStatusDelegated
		return tx.Model(&mission).Update("status", models.QuestStatusDelegated).Error
	})
	if err != nil {
		utils.Error(c, 5000, "创建派遣失败: "+err.Error())
		return
	}

	utils.Success(c, "NPC 委托已创建", gin.H{"id": dispatch.ID, "op_tag": dispatch.OpTag})
}

// ResolveDispatch 结算派遣命运检定。结算层返回 nil 表示该派遣不可结算
func ResolveDispatch(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var dispatch models.Dispatch
	if err := database.DB.First(&dispatch, id).Error; err != nil {
		utils.Error(c, 4004, "派遣不存在")
		return
	}

	var result *services.DispatchResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = services.ResolveDispatch(tx, &dispatch, utils.NewRand())
		return err
	})
	if err != nil {
		utils.Error(c, 5000, "结算失败: "+err.Error())
		return
	}

	if result == nil {
		utils.Error(c, 3001, "无法结算该派遣（状态无效）")
		return
	}

	var guildID uint32
	if dispatch.SquadID != nil {
		var squad models.Squad
		if database.DB.First(&squad, *dispatch.SquadID).Error == nil {
			guildID = squad.GuildID
		}
	} else if dispatch.MissionID != nil {
		var mission models.Quest
		if database.DB.First(&mission, *dispatch.MissionID).Error == nil {
			guildID = mission.GuildID
		}
	}
	if guildID != 0 {
		services.InvalidateQuestRankStats(guildID)
	}

	utils.Success(c, "success", gin.H{
		"dispatch_id": dispatch.ID,
		"status":      dispatch.Status,
		"result_log":  dispatch.ResultLog,
		"result":      result,
	})
}

// ListPendingDispatches 待结算派遣列表（按目标日期升序）
func ListPendingDispatches(c *gin.Context) {
	var dispatches []models.Dispatch
	if err := database.DB.Preload("Squad").Preload("Mission").
		Where("status = ?", models.DispatchStatusPending).
		Order("target_date asc").
		Find(&dispatches).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	items := make([]dto.DispatchItemResp, 0, len(dispatches))
	for _, d := range dispatches {
		item := dto.DispatchItemResp{
			ID:       d.ID,
			OpTag:    d.OpTag,
			Rank:     string(d.Rank),
			NPCCount: d.NPCCount,
			Status:   string(d.Status),
		}
		if d.TargetDate != nil {
			item.TargetDate = d.TargetDate.Format("2006-01-02 15:04:05")
		}
		if d.Squad != nil {
			item.SquadName = d.Squad.Name
		}
		if d.Mission != nil {
			item.MissionTitle = d.Mission.Title
		}
		items = append(items, item)
	}

	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"dispatches": items,
	})
}
