// file: models/member.go
package models

import (
	"time"
)

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusInjured  MemberStatus = "INJURED"
	MemberStatusRetired  MemberStatus = "RETIRED"
	MemberStatusDeceased MemberStatus = "DECEASED" // 终态，任何流程不得再迁出
)

// Member 对应 guildhall_member 表
type Member struct {
	ID        uint32       `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"size:100;not null" json:"name"`
	Status    MemberStatus `gorm:"type:enum('ACTIVE','INJURED','RETIRED','DECEASED');default:'ACTIVE'" json:"status"`
	GuildID   uint32       `gorm:"not null" json:"guild_id"`
	SquadID   *uint32      `json:"squad_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (Member) TableName() string {
	return "guildhall_member"
}
