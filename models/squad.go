// file: models/squad.go
package models

import (
	"time"
)

// SquadRank 小队军衔阶梯，对应 guildhall_squad_rank 表。
// Order 严格全序，数值越大军衔越高；晋升规则见 services/rank_service.go
type SquadRank struct {
	ID               uint32 `gorm:"primarykey" json:"id"`
	Name             string `gorm:"size:100;unique;not null" json:"name"`
	Order            int    `gorm:"column:rank_order;default:0" json:"order"`
	MissionsRequired int    `gorm:"default:0" json:"missions_required"`
	MinGuildLevel    int    `gorm:"default:1" json:"min_guild_level"`
	Description      string `gorm:"type:text" json:"description"`
}

func (SquadRank) TableName() string {
	return "guildhall_squad_rank"
}

// Squad 对应 guildhall_squad 表。MissionsCompleted 只增不减
type Squad struct {
	ID                uint32     `gorm:"primarykey" json:"id"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	RankID            *uint32    `json:"rank_id,omitempty"`
	Rank              *SquadRank `gorm:"foreignKey:RankID" json:"rank,omitempty"`
	MissionsCompleted int        `gorm:"default:0" json:"missions_completed"`
	GuildID           uint32     `gorm:"not null" json:"guild_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Squad) TableName() string {
	return "guildhall_squad"
}
