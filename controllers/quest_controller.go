// file: controllers/quest_controller.go
package controllers

import (
	"GuildHall/database"
	"GuildHall/dto"
	"GuildHall/mappers"
	"GuildHall/models"
	"GuildHall/services"
	"GuildHall/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"strconv"
)

// 快速任务模板（权重偏向低级别委托）
var quickMissionTemplates = []struct {
	Title string
	Desc  string
}{
	{"护送商队", "护送一支商队穿过危机四伏的官道。"},
	{"猎杀哥布林", "一伙哥布林正在洗劫附近的农庄，清剿它们。"},
	{"加急快件", "将一封密信送到邻城的贵族手中。"},
	{"密林调查", "伐木工报告幽暗森林中出现怪声与异光。"},
	{"地窖清理", "巨鼠占领了酒馆的地窖。"},
}

// ListQuests 任务列表（附带封蜡摆放参数）
func ListQuests(c *gin.Context) {
	db := database.DB.Model(&models.Quest{}).Preload("AssignedMembers")

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", models.QuestStatus(status))
	}
	if guildID := c.Query("guild_id"); guildID != "" {
		db = db.Where("guild_id = ?", guildID)
	}

	var quests []models.Quest
	if err := db.Order("`rank` asc, title asc").Find(&quests).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	items := make([]dto.QuestItemResp, 0, len(quests))
	for _, q := range quests {
		items = append(items, mappers.MapQuestToItemResp(q))
	}

	utils.Success(c, "success", gin.H{
		"total":  len(items),
		"quests": items,
	})
}

// CreateQuickQuest 一键生成快速任务：随机模板 + 加权随机级别（F/E/D）
func CreateQuickQuest(c *gin.Context) {
	var req struct {
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

	rng := utils.NewRand()
	template := quickMissionTemplates[rng.Intn(len(quickMissionTemplates))]

	// 级别权重 F:50 E:30 D:20
	var rank models.QuestRank
	switch w := rng.Intn(100); {
	case w < 50:
		rank = models.QuestRankF
	case w < 80:
		rank = models.QuestRankE
	default:
		rank = models.QuestRankD
	}

	gxp := models.RankGXPRewards[rank]
	quest := models.Quest{
		Title:        template.Title,
		Description:  template.Desc,
		Type:         models.QuestTypeExternal,
		Status:       models.QuestStatusOpen,
		Rank:         rank,
		GXPReward:    gxp,
		GoldReward:   float64(gxp * 10), // 1 GXP = 10 金
		DurationDays: rng.Intn(3) + 1,
		GuildID:      guild.ID,
	}
	if err := database.DB.Create(&quest).Error; err != nil {
		utils.Error(c, 5000, "创建任务失败: "+err.Error())
		return
	}

	utils.Success(c, "快速任务已创建", gin.H{"id": quest.ID, "title": quest.Title, "rank": quest.Rank})
}

// CreateQuest 自定义任务
func CreateQuest(c *gin.Context) {
	var req dto.CreateQuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" || req.Description == "" || req.GuildID == 0 {
		utils.Error(c, 1001, "缺少必填字段")
		return
	}
	if _, ok := models.RankGXPRewards[models.QuestRank(req.Rank)]; !ok {
		utils.Error(c, 1001, "rank 取值无效（F/E/D/C/B/A/S）")
		return
	}
	if req.GoldReward < 0 || req.OperationalCost < 0 || req.GXPReward < 0 {
		utils.Error(c, 1001, "数值字段不能为负")
		return
	}

	var guild models.Guild
	if err := database.DB.First(&guild, req.GuildID).Error; err != nil {
		utils.Error(c, 4004, "公会不存在")
		return
	}

	quest := mappers.MapCreateReqToQuest(req)
	if err := database.DB.Create(&quest).Error; err != nil {
		utils.Error(c, 5000, "创建任务失败: "+err.Error())
		return
	}

	utils.Success(c, "任务已创建", gin.H{"id": quest.ID})
}

// DelegateQuest 委派任务：校验状态与成员归属后指派成员并立即结算命运检定。
// 校验全部短路在任何写操作之前，失败时不产生半成品状态
func DelegateQuest(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var quest models.Quest
	if err := database.DB.First(&quest, id).Error; err != nil {
		utils.Error(c, 4004, "任务不存在")
		return
	}

	if quest.Status != models.QuestStatusOpen && quest.Status != models.QuestStatusInProgress {
		utils.Error(c, 3001, "当前状态下任务不可委派")
		return
	}

	var req dto.DelegateQuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	if len(req.AssignedMembers) == 0 {
		utils.Error(c, 1002, "未指派任何成员")
		return
	}

	// 只接受本公会成员；传入无效 ID 时要求至少命中一名有效成员
	var members []models.Member
	database.DB.Where("id IN ? AND guild_id = ?", req.AssignedMembers, quest.GuildID).Find(&members)
	if len(members) == 0 {
		utils.Error(c, 1003, "成员列表无效")
		return
	}

	var result *services.DelegationResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&quest).Association("AssignedMembers").Replace(&members); err != nil {
			return err
		}
		quest.Status = models.QuestStatusDelegated
		if err := tx.Model(&quest).Update("status", models.QuestStatusDelegated).Error; err != nil {
			return err
		}

		var err error
		result, err = services.ResolveDelegation(tx, &quest, utils.NewRand())
		return err
	})
	if err != nil {
		utils.Error(c, 5000, "结算失败: "+err.Error())
		return
	}

	services.InvalidateQuestRankStats(quest.GuildID)

	utils.Success(c, "success", gin.H{
		"quest_id":          quest.ID,
		"status":            quest.Status,
		"delegation_result": result,
	})
}

// CompleteQuest 手动结算任务（发放奖励）。已终态任务直接拒绝
func CompleteQuest(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var quest models.Quest
	if err := database.DB.First(&quest, id).Error; err != nil {
		utils.Error(c, 4004, "任务不存在")
		return
	}

	if quest.IsTerminal() {
		utils.Error(c, 3001, "任务已结算")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return services.CompleteQuest(tx, &quest)
	})
	if err != nil {
		utils.Error(c, 5000, "结算失败: "+err.Error())
		return
	}

	services.InvalidateQuestRankStats(quest.GuildID)

	utils.Success(c, "任务已完成，奖励已发放", gin.H{"id": quest.ID, "status": quest.Status})
}
