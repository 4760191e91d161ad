package main

import (
	"log"

	"github.com/JonFRutan/Orbital/config"
	"github.com/JonFRutan/Orbital/database"
	"github.com/JonFRutan/Orbital/routes"
	"github.com/JonFRutan/Orbital/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Файл базы создаётся пустым списком, если его ещё нет
	store := database.NewStore(cfg.DatabaseFile)
	if err := store.Init(); err != nil {
		log.Fatalf("failed to init database file: %v", err)
	}
	log.Printf("Database file ready: %s", cfg.DatabaseFile)

	utils.SetStore(store)

	r := routes.SetupRouter()

	addr := "0.0.0.0:" + cfg.Port
	log.Printf("Server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
