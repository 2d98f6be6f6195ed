// file: models/building.go
package models

import (
	"time"
)

// 特殊设施 slug：优势骰与成本减免按 slug 识别，数值加成走布尔标记字段
const (
	SlugWarRoom         = "war-room"         // 作战室：委派/派遣检定均获优势
	SlugCartographyRoom = "cartography-room" // 制图室：仅派遣检定获优势
	SlugArsenal         = "arsenal"          // 军械库：任务运作成本 -20%
	SlugVault           = "vault"
	SlugExpandedQuarter = "expanded-quarters"
)

// Building 设施图鉴，对应 guildhall_building 表
type Building struct {
	ID               uint32    `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Slug             string    `gorm:"size:100;unique;not null" json:"slug"`
	Description      string    `gorm:"type:text" json:"description"`
	Cost             float64   `gorm:"type:decimal(12,2);not null" json:"cost"`
	SlotsRequired    int       `gorm:"default:1" json:"slots_required"`
	MinLevelRequired int       `gorm:"default:1" json:"min_level_required"`
	BonusGoldCap     bool      `gorm:"default:0" json:"bonus_gold_cap"`
	BonusMemberSlots bool      `gorm:"default:0" json:"bonus_member_slots"`
	BonusHealing     bool      `gorm:"default:0" json:"bonus_healing"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Powers []BuildingPower `gorm:"foreignKey:BuildingID" json:"powers,omitempty"`
}

func (Building) TableName() string {
	return "guildhall_building"
}

// BuildingPower 设施附带的能力描述（纯展示数据）
type BuildingPower struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	BuildingID  uint32 `gorm:"not null" json:"building_id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (BuildingPower) TableName() string {
	return "guildhall_building_power"
}

// GuildBuilding 公会已建造设施关联表
type GuildBuilding struct {
	ID         uint32    `gorm:"primarykey" json:"id"`
	GuildID    uint32    `gorm:"uniqueIndex:unique_guild_building;not null" json:"guild_id"`
	BuildingID uint32    `gorm:"uniqueIndex:unique_guild_building;not null" json:"building_id"`
	Building   Building  `gorm:"foreignKey:BuildingID" json:"building"`
	BuiltAt    time.Time `gorm:"autoCreateTime" json:"built_at"`
}

func (GuildBuilding) TableName() string {
	return "guildhall_guild_building"
}
