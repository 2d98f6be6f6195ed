// file: database/connect.go
package database

import (
	"GuildHall/config"
	"GuildHall/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"log"
	"time"
)

var DB *gorm.DB

func Connect() {
	var err error
	DB, err = gorm.Open(mysql.Open(config.C.MySQLDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 连接池配置：空闲 10 / 最大 100 / 1 小时回收（规避 MySQL wait_timeout）
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 自动建表（开发环境用，生产建议禁用改走 SQL 迁移）
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Guild{},
		&models.Building{},
		&models.BuildingPower{},
		&models.GuildBuilding{},
		&models.SquadRank{},
		&models.Squad{},
		&models.Member{},
		&models.Quest{},
		&models.Dispatch{},
		&models.Chronicle{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
