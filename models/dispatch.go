// file: models/dispatch.go
package models

import (
	"gorm.io/gorm"
	"time"
)

type DispatchStatus string

const (
	DispatchStatusPending   DispatchStatus = "PENDING" // 初始态，唯一可结算状态
	DispatchStatusCompleted DispatchStatus = "COMPLETED"
	DispatchStatusFailed    DispatchStatus = "FAILED"
	DispatchStatusDisaster  DispatchStatus = "DISASTER"
)

// Dispatch 对应 guildhall_dispatch 表。
// SquadID 与 MissionID 二选一：小队派遣或委托 NPC 执行某条任务。
// 两者都为空的记录在结算时按静默空操作处理，创建接口负责拦截。
type Dispatch struct {
	ID           uint32         `gorm:"primarykey" json:"id"`
	SquadID      *uint32        `json:"squad_id,omitempty"`
	Squad        *Squad         `gorm:"foreignKey:SquadID" json:"squad,omitempty"`
	MissionID    *uint32        `json:"mission_id,omitempty"`
	Mission      *Quest         `gorm:"foreignKey:MissionID" json:"mission,omitempty"`
	Rank         QuestRank      `gorm:"type:enum('F','E','D','C','B','A','S')" json:"rank,omitempty"`
	NPCCount     int            `gorm:"column:npc_count;default:0" json:"npc_count"`
	DurationDays int            `gorm:"default:1" json:"duration_days"`
	StartDate    time.Time      `gorm:"autoCreateTime" json:"start_date"`
	TargetDate   *time.Time     `json:"target_date,omitempty"`
	Status       DispatchStatus `gorm:"type:enum('PENDING','COMPLETED','FAILED','DISASTER');default:'PENDING'" json:"status"`
	OpTag        string         `gorm:"size:64" json:"op_tag"`
	ResultLog    string         `gorm:"type:text" json:"result_log"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Dispatch) TableName() string {
	return "guildhall_dispatch"
}

// BeforeSave GORM Hook：按工期推算目标日期
func (d *Dispatch) BeforeSave(tx *gorm.DB) (err error) {
	if d.TargetDate == nil && !d.StartDate.IsZero() {
		target := d.StartDate.AddDate(0, 0, d.DurationDays)
		d.TargetDate = &target
	}
	return
}
