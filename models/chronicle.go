// file: models/chronicle.go
package models

import (
	"time"
)

type ChronicleKind string

const (
	ChronicleKindDelegation ChronicleKind = "delegation"
	ChronicleKindDispatch   ChronicleKind = "dispatch"
)

// Chronicle 对应 guildhall_chronicle 编年史表：每次命运检定结算追加一条记录
type Chronicle struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	GuildID     uint32        `gorm:"not null" json:"guild_id"`
	Kind        ChronicleKind `gorm:"type:enum('delegation','dispatch');not null" json:"kind"`
	SubjectName string        `gorm:"size:200;not null" json:"subject_name"`
	Rank        QuestRank     `gorm:"type:enum('F','E','D','C','B','A','S')" json:"rank,omitempty"`
	Outcome     string        `gorm:"size:20;not null" json:"outcome"`
	Roll        int           `gorm:"not null" json:"roll"`
	Deaths      int           `gorm:"default:0" json:"deaths"`
	DeadNames   string        `gorm:"type:text" json:"dead_names"`
	LoggedAt    time.Time     `gorm:"autoCreateTime" json:"logged_at"`
}

func (Chronicle) TableName() string {
	return "guildhall_chronicle"
}
