// file: models/quest.go
package models

import (
	"gorm.io/gorm"
	"time"
)

type QuestType string
type QuestStatus string
type QuestRank string

const (
	QuestTypeExternal QuestType = "EXTERNAL"
	QuestTypeInternal QuestType = "INTERNAL" // 派遣成功后自动生成的存档任务

	QuestStatusOpen       QuestStatus = "OPEN"
	QuestStatusInProgress QuestStatus = "IN_PROGRESS"
	QuestStatusDelegated  QuestStatus = "DELEGATED"
	QuestStatusCompleted  QuestStatus = "COMPLETED" // 终态
	QuestStatusFailed     QuestStatus = "FAILED"
	QuestStatusDisaster   QuestStatus = "DISASTER" // 终态

	QuestRankF QuestRank = "F"
	QuestRankE QuestRank = "E"
	QuestRankD QuestRank = "D"
	QuestRankC QuestRank = "C"
	QuestRankB QuestRank = "B"
	QuestRankA QuestRank = "A"
	QuestRankS QuestRank = "S"
)

// RankGXPRewards 任务级别对应的公会经验奖励（固定表）
var RankGXPRewards = map[QuestRank]int{
	QuestRankF: 2,
	QuestRankE: 5,
	QuestRankD: 15,
	QuestRankC: 35,
	QuestRankB: 80,
	QuestRankA: 200,
	QuestRankS: 450,
}

// Quest 对应 guildhall_quest 表
type Quest struct {
	ID              uint32      `gorm:"primarykey" json:"id"`
	Title           string      `gorm:"size:200;not null" json:"title"`
	Description     string      `gorm:"type:text" json:"description"`
	Type            QuestType   `gorm:"type:enum('EXTERNAL','INTERNAL');default:'EXTERNAL'" json:"type"`
	Status          QuestStatus `gorm:"type:enum('OPEN','IN_PROGRESS','DELEGATED','COMPLETED','FAILED','DISASTER');default:'OPEN'" json:"status"`
	DurationDays    int         `gorm:"default:1" json:"duration_days"`
	Rank            QuestRank   `gorm:"type:enum('F','E','D','C','B','A','S');not null" json:"rank"`
	GoldReward      float64     `gorm:"type:decimal(12,2);default:0" json:"gold_reward"`
	GXPReward       int         `gorm:"column:gxp_reward;default:0" json:"gxp_reward"`
	OperationalCost float64     `gorm:"type:decimal(12,2);default:0" json:"operational_cost"`
	GuildID         uint32      `gorm:"not null" json:"guild_id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	AssignedMembers []Member `gorm:"many2many:guildhall_quest_members;" json:"assigned_members,omitempty"`
}

func (Quest) TableName() string {
	return "guildhall_quest"
}

// BeforeSave GORM Hook：未显式指定经验奖励时按级别表补全
func (q *Quest) BeforeSave(tx *gorm.DB) (err error) {
	if q.GXPReward == 0 && q.Rank != "" {
		q.GXPReward = RankGXPRewards[q.Rank]
	}
	return
}

// IsTerminal 任务是否已进入终态（终态任务的结算为幂等空操作）
func (q *Quest) IsTerminal() bool {
	return q.Status == QuestStatusCompleted || q.Status == QuestStatusDisaster
}
