// file: services/testutil_test.go
package services

import (
	"GuildHall/models"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 测试库用 SQLite 内存库。生产表列类型含 MySQL enum，SQLite 不认，
// 这里用等价的手写建表语句
var testSchema = []string{
	`CREATE TABLE guildhall_guild (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		level INTEGER DEFAULT 1,
		gxp INTEGER DEFAULT 0,
		funds REAL DEFAULT 0,
		influence_points INTEGER DEFAULT 0,
		description TEXT,
		legal_status TEXT DEFAULT 'INDEPENDENT',
		moral_alignment TEXT DEFAULT 'HUMANITARIAN',
		code TEXT UNIQUE,
		emblem TEXT DEFAULT 'swords',
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guildhall_member (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		status TEXT DEFAULT 'ACTIVE',
		guild_id INTEGER NOT NULL,
		squad_id INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guildhall_squad_rank (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		rank_order INTEGER DEFAULT 0,
		missions_required INTEGER DEFAULT 0,
		min_guild_level INTEGER DEFAULT 1,
		description TEXT
	)`,
	`CREATE TABLE guildhall_squad (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		rank_id INTEGER,
		missions_completed INTEGER DEFAULT 0,
		guild_id INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guildhall_quest (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		type TEXT DEFAULT 'EXTERNAL',
		status TEXT DEFAULT 'OPEN',
		duration_days INTEGER DEFAULT 1,
		rank TEXT NOT NULL,
		gold_reward REAL DEFAULT 0,
		gxp_reward INTEGER DEFAULT 0,
		operational_cost REAL DEFAULT 0,
		guild_id INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guildhall_quest_members (
		quest_id INTEGER NOT NULL,
		member_id INTEGER NOT NULL,
		PRIMARY KEY (quest_id, member_id)
	)`,
	`CREATE TABLE guildhall_dispatch (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		squad_id INTEGER,
		mission_id INTEGER,
		rank TEXT,
		npc_count INTEGER DEFAULT 0,
		duration_days INTEGER DEFAULT 1,
		start_date DATETIME,
		target_date DATETIME,
		status TEXT DEFAULT 'PENDING',
		op_tag TEXT,
		result_log TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guildhall_building (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		cost REAL NOT NULL,
		slots_required INTEGER DEFAULT 1,
		min_level_required INTEGER DEFAULT 1,
		bonus_gold_cap BOOLEAN DEFAULT 0,
		bonus_member_slots BOOLEAN DEFAULT 0,
		bonus_healing BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE guildhall_building_power (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		building_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE guildhall_guild_building (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id INTEGER NOT NULL,
		building_id INTEGER NOT NULL,
		built_at DATETIME,
		UNIQUE (guild_id, building_id)
	)`,
	`CREATE TABLE guildhall_chronicle (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id INTEGER NOT NULL,
		kind TEXT NOT NULL,
		subject_name TEXT NOT NULL,
		rank TEXT,
		outcome TEXT NOT NULL,
		roll INTEGER NOT NULL,
		deaths INTEGER DEFAULT 0,
		dead_names TEXT,
		logged_at DATETIME
	)`,
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// 内存库随连接存亡，必须钉死在单连接上
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

var guildCodeSeq int

func createTestGuild(t *testing.T, db *gorm.DB, level int, funds float64) *models.Guild {
	t.Helper()
	guildCodeSeq++
	guild := models.Guild{
		Name:  "黑曜石兄弟会",
		Level: level,
		Funds: funds,
		Code:  fmt.Sprintf("OBS-%04d", guildCodeSeq),
	}
	if err := db.Create(&guild).Error; err != nil {
		t.Fatalf("create guild: %v", err)
	}
	return &guild
}

func createTestGuild2(t *testing.T, db *gorm.DB) *models.Guild {
	return createTestGuild(t, db, 1, 500)
}

func grantBuilding(t *testing.T, db *gorm.DB, guildID uint32, b models.Building) {
	t.Helper()
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("create building: %v", err)
	}
	if err := db.Create(&models.GuildBuilding{GuildID: guildID, BuildingID: b.ID}).Error; err != nil {
		t.Fatalf("create guild building: %v", err)
	}
}

func makeMembers(t *testing.T, db *gorm.DB, guildID uint32, n int) []models.Member {
	t.Helper()
	members := make([]models.Member, 0, n)
	for i := 0; i < n; i++ {
		m := models.Member{
			Name:    fmt.Sprintf("成员%d", i+1),
			GuildID: guildID,
			Status:  models.MemberStatusActive,
		}
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("create member: %v", err)
		}
		members = append(members, m)
	}
	return members
}

// seqSource 先按脚本吐出预设骰值，耗尽后退回真实随机源。
// 脚本值 v 编码为 v<<32，使 Intn(n) 恰好得到 v（v < n 时）。
// 耗尽后必须换真实随机源：Shuffle 的拒绝采样在常数源上可能永不终止
type seqSource struct {
	values []int64
	idx    int
	rest   rand.Source
}

func (s *seqSource) Int63() int64 {
	if s.idx < len(s.values) {
		v := s.values[s.idx]
		s.idx++
		return v << 32
	}
	return s.rest.Int63()
}
func (s *seqSource) Seed(int64) {}

func seqRand(values ...int) *rand.Rand {
	vs := make([]int64, len(values))
	for i, v := range values {
		vs[i] = int64(v)
	}
	return rand.New(&seqSource{values: vs, rest: rand.NewSource(1)})
}

// fixedRand 只固定第一骰
func fixedRand(value int) *rand.Rand {
	return seqRand(value)
}
