// file: main.go
package main

import (
	"GuildHall/config"
	"GuildHall/database"
	"GuildHall/routes"
	"log"
)

func main() {
	config.Load()

	database.Connect()
	database.InitRedis()

	// 禁用自动迁移 (推荐)
	// database.MigrateTables()

	r := routes.SetupRouter()

	log.Printf("Starting server on %s", config.C.ListenAddr)
	if err := r.Run(config.C.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
