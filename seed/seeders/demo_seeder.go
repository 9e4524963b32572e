package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
	"gorm.io/gorm"
)

// DemoSeeder creates a demo account with a little sample progress so a fresh
// install has something to look at.
type DemoSeeder struct {
	db *gorm.DB
}

// NewDemoSeeder creates a new demo seeder
func NewDemoSeeder(db *gorm.DB) *DemoSeeder {
	return &DemoSeeder{db: db}
}

const demoUserID = "user_demo_gopherpath"

// SeedDemoUser creates the demo user and a couple of completed lessons
func (s *DemoSeeder) SeedDemoUser() error {
	var existing model.User
	if err := s.db.Where("id = ?", demoUserID).First(&existing).Error; err == nil {
		log.Println("Demo user already exists, skipping demo seeding")
		return nil
	}

	now := time.Now()
	xp := 2 * shared.LessonXPReward
	user := model.User{
		ID:           demoUserID,
		Email:        "demo@gopherpath.dev",
		Name:         "Demo Gopher",
		XP:           xp,
		Level:        shared.LevelForXP(xp),
		Streak:       1,
		LastActiveAt: &now,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	lessons := []struct {
		moduleID string
		lessonID string
	}{
		{"beginner", "setup"},
		{"beginner", "variables"},
	}

	for _, lesson := range lessons {
		id, _ := uuid.NewV7()
		completedAt := now
		row := model.LessonProgress{
			ID:          id.String(),
			UserID:      user.ID,
			ModuleID:    lesson.moduleID,
			LessonID:    lesson.lessonID,
			Completed:   true,
			CompletedAt: &completedAt,
			TimeSpent:   300,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}

	log.Printf("Created demo user: %s", user.Email)
	return nil
}
