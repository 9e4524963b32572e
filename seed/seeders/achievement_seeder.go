package seeders

import (
	"log"

	"github.com/google/uuid"
	"github.com/gopherpath/gopherpath_api/model"
	"gorm.io/gorm"
)

// AchievementSeeder handles seeding the achievement catalog
type AchievementSeeder struct {
	db *gorm.DB
}

// NewAchievementSeeder creates a new achievement seeder
func NewAchievementSeeder(db *gorm.DB) *AchievementSeeder {
	return &AchievementSeeder{db: db}
}

// SeedAchievements inserts the default catalog, skipping slugs that exist
func (s *AchievementSeeder) SeedAchievements() error {
	created := 0
	for _, achievement := range model.DefaultAchievements() {
		var count int64
		if err := s.db.Model(&model.Achievement{}).Where("slug = ?", achievement.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		id, _ := uuid.NewV7()
		achievement.ID = id.String()
		if err := s.db.Create(&achievement).Error; err != nil {
			log.Printf("Error creating achievement %s: %v", achievement.Slug, err)
			return err
		}
		created++
	}

	log.Printf("Seeded %d achievements", created)
	return nil
}
