package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AchievementService evaluates badge thresholds and grants them. Grants are
// monotonic: re-running a check never revokes and never double-awards.
type AchievementService struct {
	context.DefaultService

	sqlSvc        *PostgresService
	monitoringSvc *MonitoringService
}

const ACHIEVEMENT_SVC = "achievement_svc"

func (svc AchievementService) Id() string {
	return ACHIEVEMENT_SVC
}

func (svc *AchievementService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AchievementService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// GetAchievements returns the full catalog with the caller's earned flags.
func (svc *AchievementService) GetAchievements(userID string) ([]dto.AchievementResponse, error) {
	catalog, err := svc.sqlSvc.GetActiveAchievements()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch achievements")
	}

	earned, err := svc.sqlSvc.GetUserAchievements(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch achievements")
	}

	earnedAt := make(map[string]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	out := make([]dto.AchievementResponse, 0, len(catalog))
	for _, a := range catalog {
		resp := dto.AchievementResponse{
			ID:          a.ID,
			Slug:        a.Slug,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			XPReward:    a.XPReward,
			Category:    a.Category,
		}
		if at, ok := earnedAt[a.ID]; ok {
			resp.Earned = true
			t := at
			resp.EarnedAt = &t
		}
		out = append(out, resp)
	}
	return out, nil
}

// CheckAchievements evaluates every unearned badge against the user's current
// stats and grants the qualifying ones. Grants already persisted survive a
// later failure in the same batch.
func (svc *AchievementService) CheckAchievements(userID string) (*dto.CheckAchievementsResponse, error) {
	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(err, "Failed to check achievements")
	}

	lessons, err := svc.sqlSvc.CountCompletedLessons(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to check achievements")
	}
	challenges, err := svc.sqlSvc.CountCompletedChallenges(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to check achievements")
	}
	streak := shared.ComputeStreak(user.Streak, user.LastActiveAt, time.Now())

	candidates, err := svc.sqlSvc.GetUnearnedAchievements(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to check achievements")
	}

	newlyEarned := []string{}
	for _, achievement := range candidates {
		req, err := achievement.Decoded()
		if err != nil {
			log.WithField("achievement", achievement.Slug).Warnf("Bad requirement payload: %v", err)
			continue
		}

		if !qualifies(achievement.Category, req, int(lessons), int(challenges), streak, user.XP) {
			continue
		}

		err = svc.sqlSvc.CreateUserAchievement(&model.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
		})
		if err != nil {
			if IsConflict(err) {
				// Raced another check run; the grant exists, move on.
				continue
			}
			return nil, shared.NewInternalError(err, "Failed to check achievements")
		}

		if _, err := svc.sqlSvc.AddUserXP(userID, achievement.XPReward); err != nil {
			return nil, shared.NewInternalError(err, "Failed to check achievements")
		}

		svc.monitoringSvc.RecordAchievementGranted()
		svc.monitoringSvc.RecordXPAwarded(achievement.XPReward)
		newlyEarned = append(newlyEarned, achievement.Slug)
	}

	message := "No new achievements earned"
	if len(newlyEarned) > 0 {
		message = fmt.Sprintf("Earned %d new achievement(s)!", len(newlyEarned))
	}

	return &dto.CheckAchievementsResponse{
		NewlyEarned: newlyEarned,
		Message:     message,
	}, nil
}

// qualifies applies the per-category threshold rule. Unknown categories and
// absent thresholds never grant.
func qualifies(category string, req model.AchievementRequirement, lessons, challenges, streak, xp int) bool {
	switch category {
	case shared.CategoryLearning:
		return req.LessonsCompleted > 0 && lessons >= req.LessonsCompleted
	case shared.CategoryStreak:
		return req.StreakDays > 0 && streak >= req.StreakDays
	case shared.CategoryChallenge:
		return req.ChallengesSolved > 0 && challenges >= req.ChallengesSolved
	case shared.CategoryXP:
		return req.TotalXP > 0 && xp >= req.TotalXP
	default:
		return false
	}
}
