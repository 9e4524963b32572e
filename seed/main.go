package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gopherpath/gopherpath_api/seed/seeders"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, achievements, demo")
		dbPath   = flag.String("db", "", "SQLite database path (used when DATABASE_URL is not set)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "achievements":
		log.Println("Seeding achievements only...")
		if err := mainSeeder.SeedAchievementsOnly(); err != nil {
			log.Fatalf("Failed to seed achievements: %v", err)
		}
	case "demo":
		log.Println("Seeding demo user only...")
		if err := mainSeeder.SeedDemoUserOnly(); err != nil {
			log.Fatalf("Failed to seed demo user: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'achievements', or 'demo'", *seedType)
	}

	log.Println("Seeding finished")
}

func openDatabase(dbPath string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		log.Println("Connecting to postgres")
		return gorm.Open(postgres.Open(dsn), config)
	}

	if dbPath == "" {
		dbPath = os.Getenv("DB_NAME")
		if dbPath == "" {
			dbPath = "gopherpath.db"
		}
	}

	log.Printf("Connecting to sqlite database: %s", dbPath)
	return gorm.Open(sqlite.Open(dbPath), config)
}

func showHelp() {
	fmt.Println(`GopherPath database seeder

Usage:
  seed [flags]

Flags:
  -type string   Type of seeding: all, achievements, demo (default "all")
  -db string     SQLite database path (ignored when DATABASE_URL is set)
  -help          Show this message

The seeder connects to DATABASE_URL when set, otherwise to a local
SQLite file. Seeding is idempotent, existing rows are left alone.`)
}
