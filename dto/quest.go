// file: dto/quest.go
package dto

import "strings"

// ========== 请求 DTO ==========

type CreateQuestReq struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Rank            string  `json:"rank"`
	DurationDays    int     `json:"duration_days"`
	GoldReward      float64 `json:"gold_reward"`
	GXPReward       int     `json:"gxp_reward"`
	OperationalCost float64 `json:"operational_cost"`
	GuildID         uint32  `json:"guild_id"`
}

// Normalize 清洗与默认值
func (r *CreateQuestReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Rank = strings.ToUpper(strings.TrimSpace(r.Rank))
	if r.DurationDays <= 0 {
		r.DurationDays = 1
	}
}

// DelegateQuestReq 委派任务：指派成员后立即结算
type DelegateQuestReq struct {
	AssignedMembers []uint32 `json:"assigned_members"`
}

// ========== 响应 DTO ==========

// QuestItemResp 任务列表项。seal_* 为封蜡贴图的确定性摆放参数（纯装饰，
// 同一任务每次返回相同值）
type QuestItemResp struct {
	ID              uint32   `json:"id"`
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Status          string   `json:"status"`
	Rank            string   `json:"rank"`
	DurationDays    int      `json:"duration_days"`
	GoldReward      float64  `json:"gold_reward"`
	GXPReward       int      `json:"gxp_reward"`
	OperationalCost float64  `json:"operational_cost"`
	SealRotation    int      `json:"seal_rotation"`
	SealTopOffset   int      `json:"seal_top_offset"`
	SealRightOffset int      `json:"seal_right_offset"`
	SealImagePath   string   `json:"seal_image_path"`
	AssignedMembers []string `json:"assigned_members"`
}
