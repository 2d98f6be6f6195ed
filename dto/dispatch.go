// file: dto/dispatch.go
package dto

// CreateDispatchReq 创建派遣：squad_id 与 mission_id 必须恰好提供一个。
// NPC 委托（mission_id 模式）必须给出 npc_count
type CreateDispatchReq struct {
	SquadID      *uint32 `json:"squad_id"`
	MissionID    *uint32 `json:"mission_id"`
	Rank         string  `json:"rank"`
	NPCCount     int     `json:"npc_count"`
	DurationDays int     `json:"duration_days"`
}

type DispatchItemResp struct {
	ID           uint32 `json:"id"`
	OpTag        string `json:"op_tag"`
	SquadName    string `json:"squad_name,omitempty"`
	MissionTitle string `json:"mission_title,omitempty"`
	Rank         string `json:"rank,omitempty"`
	NPCCount     int    `json:"npc_count"`
	Status       string `json:"status"`
	TargetDate   string `json:"target_date,omitempty"`
	ResultLog    string `json:"result_log,omitempty"`
}
