package main

import (
	"flag"
	"log"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/drivers/database"

	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: "internal/migration",
	}

	migrateDirection := migrate.Up
	if *direction == "down" {
		migrateDirection = migrate.Down
	}

	applied, err := migrate.Exec(db, "postgres", migrations, migrateDirection)
	if err != nil {
		log.Fatalf("Failed to run migrations: %s", err.Error())
	}
	log.Printf("Applied %d migrations (%s)", applied, *direction)
}
