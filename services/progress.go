package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProgressService is the XP ledger. It owns lesson/challenge upserts, the
// first-completion XP awards and the streak side effects.
type ProgressService struct {
	context.DefaultService

	sqlSvc        *PostgresService
	monitoringSvc *MonitoringService
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

func (svc *ProgressService) GetLessonProgress(userID string) ([]model.LessonProgress, error) {
	rows, err := svc.sqlSvc.ListLessonProgress(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch progress")
	}
	return rows, nil
}

func (svc *ProgressService) GetChallengeProgress(userID string) ([]model.ChallengeProgress, error) {
	rows, err := svc.sqlSvc.ListChallengeProgress(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch progress")
	}
	return rows, nil
}

// RecordLessonProgress upserts the caller's progress row for one lesson.
// +50 XP is awarded only when this call flips the row to completed for the
// first time; timeSpent accumulates; every completed=true call stamps
// lastActiveAt.
func (svc *ProgressService) RecordLessonProgress(identity shared.Identity, req dto.LessonProgressRequest) (*model.LessonProgress, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "moduleId and lessonId are required")
	}

	if err := svc.ensureUser(identity); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update progress")
	}

	now := time.Now()
	firstCompletion := false

	existing, err := svc.sqlSvc.GetLessonProgress(identity.UserID, req.ModuleID, req.LessonID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to update progress")
	}

	if existing == nil {
		lp := &model.LessonProgress{
			UserID:    identity.UserID,
			ModuleID:  req.ModuleID,
			LessonID:  req.LessonID,
			Completed: req.Completed,
			TimeSpent: req.TimeSpent,
		}
		if req.Completed {
			lp.CompletedAt = &now
		}

		if _, err := svc.sqlSvc.CreateLessonProgress(lp); err != nil {
			if !IsConflict(err) {
				return nil, shared.NewInternalError(err, "Failed to update progress")
			}
			// Lost a concurrent create, retry as an update.
			if err := svc.updateLessonRow(identity.UserID, req, now, &firstCompletion); err != nil {
				return nil, err
			}
		} else {
			firstCompletion = req.Completed
		}
	} else {
		if err := svc.updateLessonRow(identity.UserID, req, now, &firstCompletion); err != nil {
			return nil, err
		}
	}

	if firstCompletion {
		if _, err := svc.sqlSvc.AddUserXP(identity.UserID, shared.LessonXPReward); err != nil {
			return nil, shared.NewInternalError(err, "Failed to update progress")
		}
		svc.monitoringSvc.RecordLessonCompletion()
		svc.monitoringSvc.RecordXPAwarded(shared.LessonXPReward)
	}

	if req.Completed {
		svc.advanceStreak(identity.UserID, now)
	}

	lp, err := svc.sqlSvc.GetLessonProgress(identity.UserID, req.ModuleID, req.LessonID)
	if err != nil || lp == nil {
		return nil, shared.NewInternalError(err, "Failed to update progress")
	}
	return lp, nil
}

func (svc *ProgressService) updateLessonRow(userID string, req dto.LessonProgressRequest, now time.Time, firstCompletion *bool) error {
	if req.TimeSpent > 0 {
		if err := svc.sqlSvc.AddLessonTime(userID, req.ModuleID, req.LessonID, req.TimeSpent); err != nil {
			return shared.NewInternalError(err, "Failed to update progress")
		}
	}
	if req.Completed {
		first, err := svc.sqlSvc.MarkLessonCompleted(userID, req.ModuleID, req.LessonID, now)
		if err != nil {
			return shared.NewInternalError(err, "Failed to update progress")
		}
		*firstCompletion = first
	}
	return nil
}

// RecordChallengeProgress upserts a challenge attempt. Attempts always
// increment, code is last-write-wins, bestTime only improves, and +100 XP is
// awarded on the first completion only.
func (svc *ProgressService) RecordChallengeProgress(identity shared.Identity, req dto.ChallengeProgressRequest) (*model.ChallengeProgress, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "challengeId is required")
	}

	if err := svc.ensureUser(identity); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update progress")
	}

	now := time.Now()
	firstCompletion := false

	existing, err := svc.sqlSvc.GetChallengeProgress(identity.UserID, req.ChallengeID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to update progress")
	}

	if existing == nil {
		cp := &model.ChallengeProgress{
			UserID:      identity.UserID,
			ChallengeID: req.ChallengeID,
			Completed:   req.Completed,
			Attempts:    1,
			Code:        req.Code,
			BestTime:    req.TimeSpent,
		}
		if req.Completed {
			cp.CompletedAt = &now
		}

		if _, err := svc.sqlSvc.CreateChallengeProgress(cp); err != nil {
			if !IsConflict(err) {
				return nil, shared.NewInternalError(err, "Failed to update progress")
			}
			if err := svc.updateChallengeRow(identity.UserID, req, now, &firstCompletion); err != nil {
				return nil, err
			}
		} else {
			firstCompletion = req.Completed
		}
	} else {
		if err := svc.updateChallengeRow(identity.UserID, req, now, &firstCompletion); err != nil {
			return nil, err
		}
	}

	if firstCompletion {
		if _, err := svc.sqlSvc.AddUserXP(identity.UserID, shared.ChallengeXPReward); err != nil {
			return nil, shared.NewInternalError(err, "Failed to update progress")
		}
		svc.monitoringSvc.RecordChallengeSolve()
		svc.monitoringSvc.RecordXPAwarded(shared.ChallengeXPReward)
	}

	if req.Completed {
		svc.advanceStreak(identity.UserID, now)
	}

	cp, err := svc.sqlSvc.GetChallengeProgress(identity.UserID, req.ChallengeID)
	if err != nil || cp == nil {
		return nil, shared.NewInternalError(err, "Failed to update progress")
	}
	return cp, nil
}

func (svc *ProgressService) updateChallengeRow(userID string, req dto.ChallengeProgressRequest, now time.Time, firstCompletion *bool) error {
	if err := svc.sqlSvc.RecordChallengeAttempt(userID, req.ChallengeID, req.Code); err != nil {
		return shared.NewInternalError(err, "Failed to update progress")
	}
	if req.TimeSpent != nil {
		if err := svc.sqlSvc.ImproveBestTime(userID, req.ChallengeID, *req.TimeSpent); err != nil {
			return shared.NewInternalError(err, "Failed to update progress")
		}
	}
	if req.Completed {
		first, err := svc.sqlSvc.MarkChallengeCompleted(userID, req.ChallengeID, now)
		if err != nil {
			return shared.NewInternalError(err, "Failed to update progress")
		}
		*firstCompletion = first
	}
	return nil
}

// ensureUser lazily mirrors the authenticated identity so progress writes
// never dangle. The webhook normally creates the row first; this covers the
// gap between sign-up and webhook delivery.
func (svc *ProgressService) ensureUser(identity shared.Identity) error {
	_, err := svc.sqlSvc.GetUser(identity.UserID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	name := identity.Name
	if name == "" {
		name = "Learner"
	}
	_, err = svc.sqlSvc.CreateUser(&model.User{
		ID:    identity.UserID,
		Email: identity.Email,
		Name:  name,
	})
	if err != nil && IsConflict(err) {
		// Re-read so a conflict that was not a concurrent create of our
		// row still surfaces instead of leaving no user behind.
		if _, readErr := svc.sqlSvc.GetUser(identity.UserID); readErr != nil {
			return err
		}
		return nil
	}
	return err
}

// advanceStreak applies the day-granular streak rules on a qualifying
// activity and stamps lastActiveAt. Same day leaves the streak alone,
// consecutive days increment, a gap resets to 1.
func (svc *ProgressService) advanceStreak(userID string, now time.Time) {
	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		log.WithField("user_id", userID).Warnf("Failed to load user for streak update: %v", err)
		return
	}

	streak := user.Streak
	if user.LastActiveAt == nil {
		streak = 1
	} else {
		daysDiff := int(shared.StartOfDay(now).Sub(shared.StartOfDay(*user.LastActiveAt)).Hours() / 24)

		switch daysDiff {
		case 0:
			// Same day, no change to streak
		case 1:
			// Next day, increment streak
			streak++
		default:
			// Missed day(s), reset streak
			streak = 1
		}
	}

	if err := svc.sqlSvc.StampActivity(userID, now, streak); err != nil {
		log.WithField("user_id", userID).Warnf("Failed to stamp activity: %v", err)
	}
}
