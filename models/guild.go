// file: models/guild.go
package models

import (
	"time"
)

// 自定义公会属性类型
type GuildLegalStatus string
type GuildMoralAlignment string

const (
	LegalStatusPatented    GuildLegalStatus = "PATENTED"
	LegalStatusIndependent GuildLegalStatus = "INDEPENDENT"
	LegalStatusClandestine GuildLegalStatus = "CLANDESTINE"

	AlignmentHumanitarian GuildMoralAlignment = "HUMANITARIAN"
	AlignmentCorporate    GuildMoralAlignment = "CORPORATE"
	AlignmentPredatory    GuildMoralAlignment = "PREDATORY"
)

// Guild 对应 guildhall_guild 表。
// Funds 始终落在 [0, 金库上限] 区间内，GXP 只增不减——两者的变更必须
// 经由 services 的账本函数，不允许控制器直接加减。
type Guild struct {
	ID              uint32              `gorm:"primarykey" json:"id"`
	Name            string              `gorm:"size:100;not null" json:"name"`
	Level           int                 `gorm:"default:1" json:"level"`
	GXP             int                 `gorm:"column:gxp;default:0" json:"gxp"`
	Funds           float64             `gorm:"type:decimal(15,2);default:0" json:"funds"`
	InfluencePoints int                 `gorm:"default:0" json:"influence_points"`
	Description     string              `gorm:"type:text" json:"description"`
	LegalStatus     GuildLegalStatus    `gorm:"type:enum('PATENTED','INDEPENDENT','CLANDESTINE');default:'INDEPENDENT'" json:"legal_status"`
	MoralAlignment  GuildMoralAlignment `gorm:"type:enum('HUMANITARIAN','CORPORATE','PREDATORY');default:'HUMANITARIAN'" json:"moral_alignment"`
	Code            string              `gorm:"size:10;unique" json:"code"`
	Emblem          string              `gorm:"size:50;default:'swords'" json:"emblem"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`

	Buildings []GuildBuilding `gorm:"foreignKey:GuildID" json:"buildings,omitempty"`
	Squads    []Squad         `gorm:"foreignKey:GuildID" json:"squads,omitempty"`
	Members   []Member        `gorm:"foreignKey:GuildID" json:"members,omitempty"`
	Quests    []Quest         `gorm:"foreignKey:GuildID" json:"quests,omitempty"`
}

func (Guild) TableName() string {
	return "guildhall_guild"
}
