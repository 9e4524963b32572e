package seeders

import (
	"log"

	"github.com/gopherpath/gopherpath_api/model"
	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.migrate(); err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	achievementSeeder := NewAchievementSeeder(s.db)
	if err := achievementSeeder.SeedAchievements(); err != nil {
		log.Printf("Achievement seeding failed: %v", err)
		return err
	}

	demoSeeder := NewDemoSeeder(s.db)
	if err := demoSeeder.SeedDemoUser(); err != nil {
		log.Printf("Demo user seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAchievementsOnly seeds the achievement catalog
func (s *MainSeeder) SeedAchievementsOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewAchievementSeeder(s.db).SeedAchievements()
}

// SeedDemoUserOnly seeds the demo account with sample progress
func (s *MainSeeder) SeedDemoUserOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewDemoSeeder(s.db).SeedDemoUser()
}

func (s *MainSeeder) migrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.LessonProgress{},
		&model.ChallengeProgress{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.MediaAsset{},
		&model.LessonMedia{},
	)
}
