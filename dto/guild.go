// file: dto/guild.go
package dto

// ========== 请求 DTO ==========

type CreateGuildReq struct {
	Name           string `json:"name" binding:"required"`
	Emblem         string `json:"emblem"`
	LegalStatus    string `json:"legal_status"`
	MoralAlignment string `json:"moral_alignment"`
	Motto          string `json:"motto"`
}

type UpdateGuildConfigReq struct {
	LegalStatus    string `json:"legal_status" binding:"required"`
	MoralAlignment string `json:"moral_alignment" binding:"required"`
}

// ManageGoldReq 金库手动增减（operation: add / remove）
type ManageGoldReq struct {
	Operation string  `json:"operation" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

type ConstructBuildingReq struct {
	BuildingSlug string `json:"building_slug" binding:"required"`
}

// ========== 响应 DTO ==========

type GuildBuildingResp struct {
	ID      uint32 `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	BuiltAt string `json:"built_at"`
}

// GuildDashboardResp 公会总览：基础字段 + 派生容量
type GuildDashboardResp struct {
	ID                     uint32              `json:"id"`
	Name                   string              `json:"name"`
	Code                   string              `json:"code"`
	Emblem                 string              `json:"emblem"`
	Level                  int                 `json:"level"`
	GXP                    int                 `json:"gxp"`
	Funds                  float64             `json:"funds"`
	InfluencePoints        int                 `json:"influence_points"`
	Description            string              `json:"description"`
	LegalStatus            string              `json:"legal_status"`
	MoralAlignment         string              `json:"moral_alignment"`
	MaxGoldCap             float64             `json:"max_gold_cap"`
	MaxMemberSlots         int                 `json:"max_member_slots"`
	UsedBuildingSlots      int                 `json:"used_building_slots"`
	AvailableBuildingSlots int                 `json:"available_building_slots"`
	ActiveBuildings        []GuildBuildingResp `json:"active_buildings"`
}
