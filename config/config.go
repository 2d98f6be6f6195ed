// file: config/config.go
package config

import (
	"github.com/caarlos0/env/v11"
	"log"
)

// Config 服务端全部可配置项，通过环境变量注入，带本地开发默认值
type Config struct {
	ListenAddr string `env:"GUILDHALL_ADDR" envDefault:":8080"`
	MySQLDSN   string `env:"GUILDHALL_MYSQL_DSN" envDefault:"root:123456@tcp(localhost:3306)/guildhall?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr  string `env:"GUILDHALL_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB    int    `env:"GUILDHALL_REDIS_DB" envDefault:"0"`
	JWTSecret  string `env:"GUILDHALL_JWT_SECRET" envDefault:"a-very-secure-secret-that-should-be-in-config-file"`
}

var C Config

// Load 解析环境变量，失败直接退出（配置错误没有降级意义）
func Load() {
	if err := env.Parse(&C); err != nil {
		log.Fatalf("Failed to parse config from env: %v", err)
	}
}
