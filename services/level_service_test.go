// file: services/level_service_test.go
package services

import (
	"GuildHall/models"
	"testing"
)

func TestGetBaseStats(t *testing.T) {
	cases := []struct {
		level int
		want  BaseStats
	}{
		{1, BaseStats{GoldCap: 2000, MemberSlots: 5, BuildingSlots: 1}},
		{5, BaseStats{GoldCap: 50000, MemberSlots: 25, BuildingSlots: 5}},
		{10, BaseStats{GoldCap: 5000000, MemberSlots: 50, BuildingSlots: 10}},
	}
	for _, c := range cases {
		if got := GetBaseStats(c.level); got != c.want {
			t.Errorf("GetBaseStats(%d) = %+v, want %+v", c.level, got, c.want)
		}
	}
}

func TestGetBaseStatsFallback(t *testing.T) {
	// 表外等级一律按 1 级
	for _, level := range []int{0, -3, 11, 99} {
		if got := GetBaseStats(level); got != GetBaseStats(1) {
			t.Errorf("GetBaseStats(%d) = %+v, want level-1 stats", level, got)
		}
	}
}

func TestMaxGoldCapWithVault(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 3, 0) // 3 级基础上限 10000

	if cap := MaxGoldCap(db, guild); cap != 10000 {
		t.Errorf("base cap = %v, want 10000", cap)
	}

	grantBuilding(t, db, guild.ID, models.Building{
		Name: "金库", Slug: models.SlugVault, Cost: 500, BonusGoldCap: true,
	})

	if cap := MaxGoldCap(db, guild); cap != 15000 {
		t.Errorf("vault cap = %v, want 15000", cap)
	}
}

func TestMaxMemberSlotsWithQuarters(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0) // 1 级 5 个名额

	if slots := MaxMemberSlots(db, guild); slots != 5 {
		t.Errorf("base slots = %d, want 5", slots)
	}

	grantBuilding(t, db, guild.ID, models.Building{
		Name: "扩建宿舍", Slug: models.SlugExpandedQuarter, Cost: 800, BonusMemberSlots: true,
	})

	// 5 × 1.2 = 6，向下取整
	if slots := MaxMemberSlots(db, guild); slots != 6 {
		t.Errorf("expanded slots = %d, want 6", slots)
	}
}

func TestHasBuildingSlug(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)

	if HasBuildingSlug(db, guild.ID, models.SlugWarRoom) {
		t.Error("empty guild should not have the war room")
	}

	grantBuilding(t, db, guild.ID, models.Building{
		Name: "作战室", Slug: models.SlugWarRoom, Cost: 1000,
	})

	if !HasBuildingSlug(db, guild.ID, models.SlugWarRoom) {
		t.Error("war room not detected")
	}
	if !HasBuildingSlug(db, guild.ID, models.SlugCartographyRoom, models.SlugWarRoom) {
		t.Error("multi-slug lookup should match any built slug")
	}
	if HasBuildingSlug(db, guild.ID, models.SlugArsenal) {
		t.Error("arsenal should not be detected")
	}
}

func TestAvailableBuildingSlots(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 3, 0) // 3 级 3 个建造位

	if got := AvailableBuildingSlots(db, guild); got != 3 {
		t.Errorf("available = %d, want 3", got)
	}

	grantBuilding(t, db, guild.ID, models.Building{
		Name: "军械库", Slug: models.SlugArsenal, Cost: 1200, SlotsRequired: 2,
	})

	if got := UsedBuildingSlots(db, guild.ID); got != 2 {
		t.Errorf("used = %d, want 2", got)
	}
	if got := AvailableBuildingSlots(db, guild); got != 1 {
		t.Errorf("available = %d, want 1", got)
	}
}
