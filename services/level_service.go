// file: services/level_service.go
package services

import (
	"GuildHall/models"
	"gorm.io/gorm"
	"math"
)

// BaseStats 等级基础属性
type BaseStats struct {
	GoldCap       float64
	MemberSlots   int
	BuildingSlots int
}

// 公会等级基础属性表（1-10 级），越级输入回退到 1 级
var levelTable = map[int]BaseStats{
	1:  {GoldCap: 2000, MemberSlots: 5, BuildingSlots: 1},
	2:  {GoldCap: 5000, MemberSlots: 10, BuildingSlots: 2},
	3:  {GoldCap: 10000, MemberSlots: 15, BuildingSlots: 3},
	4:  {GoldCap: 20000, MemberSlots: 20, BuildingSlots: 4},
	5:  {GoldCap: 50000, MemberSlots: 25, BuildingSlots: 5},
	6:  {GoldCap: 100000, MemberSlots: 30, BuildingSlots: 6},
	7:  {GoldCap: 200000, MemberSlots: 35, BuildingSlots: 7},
	8:  {GoldCap: 500000, MemberSlots: 40, BuildingSlots: 8},
	9:  {GoldCap: 1000000, MemberSlots: 45, BuildingSlots: 9},
	10: {GoldCap: 5000000, MemberSlots: 50, BuildingSlots: 10},
}

// GetBaseStats 查询等级基础属性，未知等级按 1 级处理
func GetBaseStats(level int) BaseStats {
	if stats, ok := levelTable[level]; ok {
		return stats
	}
	return levelTable[1]
}

// HasBuildingSlug 判断公会是否已建造指定 slug 的设施（任一命中即可）
func HasBuildingSlug(tx *gorm.DB, guildID uint32, slugs ...string) bool {
	var count int64
	tx.Model(&models.GuildBuilding{}).
		Joins("JOIN guildhall_building b ON b.id = guildhall_guild_building.building_id").
		Where("guildhall_guild_building.guild_id = ? AND b.slug IN ?", guildID, slugs).
		Count(&count)
	return count > 0
}

func hasBuildingBonus(tx *gorm.DB, guildID uint32, flagColumn string) bool {
	var count int64
	tx.Model(&models.GuildBuilding{}).
		Joins("JOIN guildhall_building b ON b.id = guildhall_guild_building.building_id").
		Where("guildhall_guild_building.guild_id = ? AND b."+flagColumn+" = ?", guildID, true).
		Count(&count)
	return count > 0
}

// MaxGoldCap 金库上限：等级基础值，有加成设施时 ×1.5
func MaxGoldCap(tx *gorm.DB, guild *models.Guild) float64 {
	base := GetBaseStats(guild.Level).GoldCap
	if hasBuildingBonus(tx, guild.ID, "bonus_gold_cap") {
		return Round2(base * 1.5)
	}
	return base
}

// MaxMemberSlots 成员上限：等级基础值，有加成设施时 ×1.2 向下取整
func MaxMemberSlots(tx *gorm.DB, guild *models.Guild) int {
	base := GetBaseStats(guild.Level).MemberSlots
	if hasBuildingBonus(tx, guild.ID, "bonus_member_slots") {
		return int(math.Trunc(float64(base) * 1.2))
	}
	return base
}

// UsedBuildingSlots 已占用的建造位总数
func UsedBuildingSlots(tx *gorm.DB, guildID uint32) int {
	var total int64
	tx.Model(&models.GuildBuilding{}).
		Joins("JOIN guildhall_building b ON b.id = guildhall_guild_building.building_id").
		Where("guildhall_guild_building.guild_id = ?", guildID).
		Select("COALESCE(SUM(b.slots_required), 0)").
		Scan(&total)
	return int(total)
}

// AvailableBuildingSlots 剩余建造位
func AvailableBuildingSlots(tx *gorm.DB, guild *models.Guild) int {
	return GetBaseStats(guild.Level).BuildingSlots - UsedBuildingSlots(tx, guild.ID)
}
