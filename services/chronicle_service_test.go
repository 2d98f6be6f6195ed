// file: services/chronicle_service_test.go
package services

import (
	"GuildHall/models"
	"testing"
	"time"
)

func TestAppendChronicle(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)

	err := AppendChronicle(db, models.Chronicle{
		GuildID:     guild.ID,
		Kind:        models.ChronicleKindDelegation,
		SubjectName: "护送商队",
		Rank:        models.QuestRankC,
		Outcome:     "SUCCESS",
		Roll:        17,
	})
	if err != nil {
		t.Fatalf("AppendChronicle: %v", err)
	}

	var entry models.Chronicle
	if err := db.Where("guild_id = ?", guild.ID).First(&entry).Error; err != nil {
		t.Fatalf("entry missing: %v", err)
	}
	if entry.SubjectName != "护送商队" || entry.Roll != 17 || entry.Deaths != 0 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.LoggedAt.IsZero() {
		t.Error("logged_at not set")
	}
}

func TestAppendChronicleAccumulates(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)

	for i := 0; i < 10; i++ {
		err := AppendChronicle(db, models.Chronicle{
			GuildID:     guild.ID,
			Kind:        models.ChronicleKindDispatch,
			SubjectName: "猎鹰小队",
			Outcome:     "COMPLETED",
			Roll:        12,
		})
		if err != nil {
			t.Fatalf("AppendChronicle #%d: %v", i, err)
		}
	}

	var count int64
	db.Model(&models.Chronicle{}).Count(&count)
	if count != 10 {
		t.Errorf("count = %d, want 10", count)
	}
}

func TestAppendChronicleTrimsOldest(t *testing.T) {
	db := setupTestDB(t)
	guild := createTestGuild(t, db, 1, 0)

	// 预灌满 5000 条历史记录，时间戳递增
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	backlog := make([]models.Chronicle, 0, 5000)
	for i := 0; i < 5000; i++ {
		backlog = append(backlog, models.Chronicle{
			GuildID:     guild.ID,
			Kind:        models.ChronicleKindDelegation,
			SubjectName: "旧委托",
			Outcome:     "SUCCESS",
			Roll:        10,
			LoggedAt:    base.Add(time.Duration(i) * time.Second),
		})
	}
	if err := db.CreateInBatches(&backlog, 500).Error; err != nil {
		t.Fatalf("seed backlog: %v", err)
	}

	err := AppendChronicle(db, models.Chronicle{
		GuildID:     guild.ID,
		Kind:        models.ChronicleKindDispatch,
		SubjectName: "最新派遣",
		Outcome:     "COMPLETED",
		Roll:        15,
		LoggedAt:    base.Add(5001 * time.Second),
	})
	if err != nil {
		t.Fatalf("AppendChronicle: %v", err)
	}

	var count int64
	db.Model(&models.Chronicle{}).Count(&count)
	if count != 5000 {
		t.Fatalf("count = %d, want 5000", count)
	}

	// 最旧的一条被裁掉，最新的一条保留
	var oldest int64
	db.Model(&models.Chronicle{}).Where("subject_name = ?", "旧委托").
		Where("logged_at = ?", base).Count(&oldest)
	if oldest != 0 {
		t.Error("oldest entry should have been trimmed")
	}
	var newest int64
	db.Model(&models.Chronicle{}).Where("subject_name = ?", "最新派遣").Count(&newest)
	if newest != 1 {
		t.Error("newest entry missing after trim")
	}
}
