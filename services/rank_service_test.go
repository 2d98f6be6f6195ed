// file: services/rank_service_test.go
package services

import (
	"GuildHall/models"
	"testing"

	"gorm.io/gorm"
)

func seedRankLadder(t *testing.T, db *gorm.DB) map[string]*models.SquadRank {
	t.Helper()
	ladder := []models.SquadRank{
		{Name: "铜", Order: 1, MissionsRequired: 0, MinGuildLevel: 1},
		{Name: "铁", Order: 2, MissionsRequired: 1, MinGuildLevel: 1},
		{Name: "银", Order: 3, MissionsRequired: 5, MinGuildLevel: 1},
		{Name: "金", Order: 4, MissionsRequired: 10, MinGuildLevel: 3},
	}
	out := make(map[string]*models.SquadRank, len(ladder))
	for i := range ladder {
		if err := db.Create(&ladder[i]).Error; err != nil {
			t.Fatalf("create rank: %v", err)
		}
		out[ladder[i].Name] = &ladder[i]
	}
	return out
}

func makeSquad(t *testing.T, db *gorm.DB, guildID uint32, rankID *uint32, missions int) *models.Squad {
	t.Helper()
	sq := models.Squad{
		Name:              "猎鹰小队",
		GuildID:           guildID,
		RankID:            rankID,
		MissionsCompleted: missions,
	}
	if err := db.Create(&sq).Error; err != nil {
		t.Fatalf("create squad: %v", err)
	}
	return &sq
}

func TestRankProgressionNoRankIsNoop(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)
	seedRankLadder(t, db)
	sq := makeSquad(t, db, guild.ID, nil, 20)

	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID != nil {
		t.Error("unranked squad must stay unranked")
	}
}

func TestRankProgressionSingleStep(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)
	ranks := seedRankLadder(t, db)
	sq := makeSquad(t, db, guild.ID, &ranks["铜"].ID, 1)

	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID == nil || *sq.RankID != ranks["铁"].ID {
		t.Errorf("expected promotion to 铁, got rank_id %v", sq.RankID)
	}

	var stored models.Squad
	db.First(&stored, sq.ID)
	if stored.RankID == nil || *stored.RankID != ranks["铁"].ID {
		t.Errorf("stored rank_id = %v", stored.RankID)
	}
}

func TestRankProgressionSkipsRungs(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)
	ranks := seedRankLadder(t, db)
	// 任务数一次满足两级门槛，直接晋到可达的最高级
	sq := makeSquad(t, db, guild.ID, &ranks["铜"].ID, 7)

	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID == nil || *sq.RankID != ranks["银"].ID {
		t.Errorf("expected promotion to 银, got rank_id %v", sq.RankID)
	}
}

func TestRankProgressionGuildLevelGate(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0) // 1 级公会，金衔要求 3 级
	ranks := seedRankLadder(t, db)
	sq := makeSquad(t, db, guild.ID, &ranks["银"].ID, 50)

	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID == nil || *sq.RankID != ranks["银"].ID {
		t.Errorf("low guild level must block promotion, got rank_id %v", sq.RankID)
	}

	// 公会升到 3 级后放行
	db.Model(&models.Guild{}).Where("id = ?", guild.ID).Update("level", 3)
	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID == nil || *sq.RankID != ranks["金"].ID {
		t.Errorf("expected promotion to 金, got rank_id %v", sq.RankID)
	}
}

func TestRankProgressionNeverDemotes(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 5, 0)
	ranks := seedRankLadder(t, db)
	// 任务数为零但已是银衔，不得降回
	sq := makeSquad(t, db, guild.ID, &ranks["银"].ID, 0)

	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID == nil || *sq.RankID != ranks["银"].ID {
		t.Errorf("rank must never go down, got rank_id %v", sq.RankID)
	}
}

func TestRankProgressionTopRankStays(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 10, 0)
	ranks := seedRankLadder(t, db)
	sq := makeSquad(t, db, guild.ID, &ranks["金"].ID, 999)

	if err := CheckRankProgression(db, sq); err != nil {
		t.Fatalf("CheckRankProgression: %v", err)
	}
	if sq.RankID == nil || *sq.RankID != ranks["金"].ID {
		t.Errorf("top rank should be stable, got rank_id %v", sq.RankID)
	}
}
