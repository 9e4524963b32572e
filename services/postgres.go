package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		// Fallback to individual environment variables
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "gopherpath"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := os.Getenv("DB_TIMEZONE")
		if timezone == "" {
			timezone = "UTC"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	// Retry connection with exponential backoff
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	if err := ds.migrate(); err != nil {
		return err
	}

	if err := ds.seedAchievements(); err != nil {
		log.Printf("Failed to seed achievement catalog: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) migrate() error {
	models := []interface{}{
		&model.User{},
		&model.LessonProgress{},
		&model.ChallengeProgress{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.MediaAsset{},
		&model.LessonMedia{},
	}

	if err := ds.db.AutoMigrate(models...); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}
	return nil
}

// seedAchievements fills an empty catalog with the default definitions so a
// fresh deployment has something to grant.
func (ds *PostgresService) seedAchievements() error {
	var count int64
	if err := ds.db.Model(&model.Achievement{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defs := model.DefaultAchievements()
	for i := range defs {
		if _, err := ds.CreateAchievement(&defs[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d achievement definitions", len(defs))
	return nil
}

func (ds *PostgresService) Shutdown() {
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError
		errorType = "TRANSACTION_ERROR"
	default:
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			statusCode = http.StatusConflict
			errorType = "UNIQUE_CONSTRAINT"
		} else if strings.Contains(err.Error(), "connection refused") {
			statusCode = http.StatusServiceUnavailable
			errorType = "DATABASE_CONNECTION_ERROR"
		} else {
			statusCode = http.StatusInternalServerError
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}

// IsConflict reports whether a HandleError result came from a uniqueness
// violation. Duplicate grants and concurrent upserts treat these as no-ops.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(err.Error(), "CONFLICT") || strings.HasPrefix(err.Error(), "UNIQUE_CONSTRAINT")
}

// ==================== USER METHODS ====================

func (ds *PostgresService) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *PostgresService) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *PostgresService) CreateUser(user *model.User) (*model.User, error) {
	if user.Level == 0 {
		user.Level = 1
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := ds.db.Create(user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return user, nil
}

// UpdateUserIdentity syncs the mirrored identity fields. Returns
// gorm.ErrRecordNotFound when no row matched so the caller can fall back to a
// create.
func (ds *PostgresService) UpdateUserIdentity(userID, email, name, image string) error {
	updates := map[string]interface{}{
		"name":       name,
		"image":      image,
		"updated_at": time.Now(),
	}
	if email != "" {
		updates["email"] = email
	}

	res := ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return ds.HandleError(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ds *PostgresService) DeleteUser(userID string) error {
	if err := ds.db.Where("id = ?", userID).Delete(&model.User{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// AddUserXP atomically increments the XP balance and recomputes the derived
// level from the new total.
func (ds *PostgresService) AddUserXP(userID string, amount int) (*model.User, error) {
	res := ds.db.Model(&model.User{}).Where("id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", amount))
	if res.Error != nil {
		return nil, ds.HandleError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ds.HandleError(gorm.ErrRecordNotFound)
	}

	user, err := ds.GetUser(userID)
	if err != nil {
		return nil, ds.HandleError(err)
	}

	if level := shared.LevelForXP(user.XP); level != user.Level {
		if err := ds.db.Model(&model.User{}).Where("id = ?", userID).
			UpdateColumn("level", level).Error; err != nil {
			return nil, ds.HandleError(err)
		}
		user.Level = level
	}
	return user, nil
}

// StampActivity records a qualifying activity: lastActiveAt moves to now and
// the streak takes the value the caller computed.
func (ds *PostgresService) StampActivity(userID string, now time.Time, streak int) error {
	err := ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"last_active_at": now,
		"streak":         streak,
		"updated_at":     now,
	}).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== LESSON PROGRESS METHODS ====================

func (ds *PostgresService) GetLessonProgress(userID, moduleID, lessonID string) (*model.LessonProgress, error) {
	var lp model.LessonProgress
	err := ds.db.Where("user_id = ? AND module_id = ? AND lesson_id = ?", userID, moduleID, lessonID).
		First(&lp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, ds.HandleError(err)
	}
	return &lp, nil
}

func (ds *PostgresService) ListLessonProgress(userID string) ([]model.LessonProgress, error) {
	var rows []model.LessonProgress
	err := ds.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&rows).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return rows, nil
}

func (ds *PostgresService) CreateLessonProgress(lp *model.LessonProgress) (*model.LessonProgress, error) {
	if lp.ID == "" {
		id, _ := uuid.NewV7()
		lp.ID = id.String()
	}
	lp.CreatedAt = time.Now()
	lp.UpdatedAt = time.Now()

	if err := ds.db.Create(lp).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return lp, nil
}

// MarkLessonCompleted flips an existing row to completed. The completed=false
// guard makes the first-completion check race-free: only one caller observes
// RowsAffected > 0.
func (ds *PostgresService) MarkLessonCompleted(userID, moduleID, lessonID string, now time.Time) (bool, error) {
	res := ds.db.Model(&model.LessonProgress{}).
		Where("user_id = ? AND module_id = ? AND lesson_id = ? AND completed = ?", userID, moduleID, lessonID, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return false, ds.HandleError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (ds *PostgresService) AddLessonTime(userID, moduleID, lessonID string, seconds int) error {
	err := ds.db.Model(&model.LessonProgress{}).
		Where("user_id = ? AND module_id = ? AND lesson_id = ?", userID, moduleID, lessonID).
		Updates(map[string]interface{}{
			"time_spent": gorm.Expr("time_spent + ?", seconds),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) CountCompletedLessons(userID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).Count(&count).Error
	if err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// ==================== CHALLENGE PROGRESS METHODS ====================

func (ds *PostgresService) GetChallengeProgress(userID, challengeID string) (*model.ChallengeProgress, error) {
	var cp model.ChallengeProgress
	err := ds.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, ds.HandleError(err)
	}
	return &cp, nil
}

func (ds *PostgresService) ListChallengeProgress(userID string) ([]model.ChallengeProgress, error) {
	var rows []model.ChallengeProgress
	err := ds.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&rows).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return rows, nil
}

func (ds *PostgresService) CreateChallengeProgress(cp *model.ChallengeProgress) (*model.ChallengeProgress, error) {
	if cp.ID == "" {
		id, _ := uuid.NewV7()
		cp.ID = id.String()
	}
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = time.Now()

	if err := ds.db.Create(cp).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return cp, nil
}

// RecordChallengeAttempt bumps the attempt counter on an existing row and
// stores the latest code submission when one was sent.
func (ds *PostgresService) RecordChallengeAttempt(userID, challengeID string, code string) error {
	updates := map[string]interface{}{
		"attempts":   gorm.Expr("attempts + 1"),
		"updated_at": time.Now(),
	}
	if code != "" {
		updates["code"] = code
	}

	err := ds.db.Model(&model.ChallengeProgress{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Updates(updates).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ImproveBestTime lowers bestTime if the reported time beats the stored one.
func (ds *PostgresService) ImproveBestTime(userID, challengeID string, seconds int) error {
	err := ds.db.Model(&model.ChallengeProgress{}).
		Where("user_id = ? AND challenge_id = ? AND (best_time IS NULL OR best_time > ?)", userID, challengeID, seconds).
		UpdateColumn("best_time", seconds).Error
	if err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// MarkChallengeCompleted is the challenge-side first-completion guard, same
// contract as MarkLessonCompleted.
func (ds *PostgresService) MarkChallengeCompleted(userID, challengeID string, now time.Time) (bool, error) {
	res := ds.db.Model(&model.ChallengeProgress{}).
		Where("user_id = ? AND challenge_id = ? AND completed = ?", userID, challengeID, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return false, ds.HandleError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (ds *PostgresService) CountCompletedChallenges(userID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.ChallengeProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).Count(&count).Error
	if err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// ==================== ACHIEVEMENT METHODS ====================

func (ds *PostgresService) CreateAchievement(achievement *model.Achievement) (*model.Achievement, error) {
	if achievement.ID == "" {
		id, _ := uuid.NewV7()
		achievement.ID = id.String()
	}
	achievement.CreatedAt = time.Now()
	achievement.UpdatedAt = time.Now()

	if err := ds.db.Create(achievement).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return achievement, nil
}

func (ds *PostgresService) GetActiveAchievements() ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := ds.db.Where("is_active = ?", true).Find(&achievements).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return achievements, nil
}

func (ds *PostgresService) GetUnearnedAchievements(userID string) ([]model.Achievement, error) {
	var achievements []model.Achievement
	sub := ds.db.Model(&model.UserAchievement{}).Select("achievement_id").Where("user_id = ?", userID)
	err := ds.db.Where("is_active = ? AND id NOT IN (?)", true, sub).Find(&achievements).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return achievements, nil
}

func (ds *PostgresService) CreateUserAchievement(userAchievement *model.UserAchievement) error {
	if userAchievement.ID == "" {
		id, _ := uuid.NewV7()
		userAchievement.ID = id.String()
	}
	userAchievement.CreatedAt = time.Now()
	if userAchievement.EarnedAt.IsZero() {
		userAchievement.EarnedAt = time.Now()
	}

	if err := ds.db.Create(userAchievement).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetUserAchievements(userID string) ([]model.UserAchievement, error) {
	var userAchievements []model.UserAchievement
	if err := ds.db.Preload("Achievement").Where("user_id = ?", userID).
		Order("earned_at DESC").Find(&userAchievements).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return userAchievements, nil
}

// ==================== MEDIA METHODS ====================

func (ds *PostgresService) CreateMediaAsset(asset *model.MediaAsset) error {
	if asset.ID == "" {
		id, _ := uuid.NewV7()
		asset.ID = id.String()
	}
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = time.Now()

	if err := ds.db.Create(asset).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetMediaAsset(id string) (*model.MediaAsset, error) {
	var asset model.MediaAsset
	if err := ds.db.Where("id = ?", id).First(&asset).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &asset, nil
}

// UpsertLessonMedia replaces any prior attachment in the same role.
func (ds *PostgresService) UpsertLessonMedia(lm *model.LessonMedia) error {
	err := ds.db.Where("module_id = ? AND lesson_id = ? AND role = ?", lm.ModuleID, lm.LessonID, lm.Role).
		Delete(&model.LessonMedia{}).Error
	if err != nil {
		return ds.HandleError(err)
	}

	if lm.ID == "" {
		id, _ := uuid.NewV7()
		lm.ID = id.String()
	}
	lm.CreatedAt = time.Now()

	if err := ds.db.Create(lm).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetLessonMedia(moduleID, lessonID string) ([]model.LessonMedia, error) {
	var rows []model.LessonMedia
	err := ds.db.Preload("Asset").Where("module_id = ? AND lesson_id = ?", moduleID, lessonID).
		Find(&rows).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return rows, nil
}
