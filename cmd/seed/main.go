package main

import (
	"flag"
	"log"
	"os"
	"symptotrack/database"
	"symptotrack/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	defaultPassword := flag.String("password", "", "Password for the default staff account (required)")
	withDemo := flag.Bool("demo", false, "Also seed demo patients with check-ins")
	flag.Parse()

	if *defaultPassword == "" {
		log.Println("Usage: seed -password <default-account-password> [-demo]")
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedDefaultAccount(database.DB, *defaultPassword); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if *withDemo {
		if err := utils.SeedDemoPatients(database.DB); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	}

	log.Println("Seeding completed")
}
