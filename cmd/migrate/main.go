package main

import (
	"log"

	"vidyalaya/app/config"
	"vidyalaya/app/database"
)

func main() {
	log.Println("Running migrations...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migrations completed successfully")
}
