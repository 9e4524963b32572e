package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	goContext "context"

	"github.com/alphabatem/common/context"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DashboardService assembles the home-screen view model: profile summary,
// completion sets, earned badges, next lesson and the recent-activity feed.
type DashboardService struct {
	context.DefaultService

	sqlSvc     *PostgresService
	catalogSvc *CatalogService
	redisSvc   *RedisService

	cacheTTL time.Duration
}

const DASHBOARD_SVC = "dashboard_svc"

const dashboardCachePrefix = "dashboard:"

func (svc DashboardService) Id() string {
	return DASHBOARD_SVC
}

func (svc *DashboardService) Configure(ctx *context.Context) error {
	svc.cacheTTL = 30 * time.Second
	return svc.DefaultService.Configure(ctx)
}

func (svc *DashboardService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// GetDashboard builds the view model, lazily mirroring the user row from the
// bearer claims when the identity webhook has not delivered yet.
func (svc *DashboardService) GetDashboard(identity shared.Identity) (*dto.DashboardResponse, error) {
	if cached := svc.cachedDashboard(identity.UserID); cached != nil {
		return cached, nil
	}

	user, err := svc.sqlSvc.GetUser(identity.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewInternalError(err, "Failed to fetch dashboard data")
		}

		name := identity.Name
		if name == "" {
			name = "Learner"
		}
		user, err = svc.sqlSvc.CreateUser(&model.User{
			ID:    identity.UserID,
			Email: identity.Email,
			Name:  name,
		})
		if err != nil {
			if !IsConflict(err) {
				return nil, shared.NewInternalError(err, "Failed to fetch dashboard data")
			}
			// Lost a concurrent create, use the winner's row.
			user, err = svc.sqlSvc.GetUser(identity.UserID)
			if err != nil {
				return nil, shared.NewInternalError(err, "Failed to fetch dashboard data")
			}
		}
	}

	lessonRows, err := svc.sqlSvc.ListLessonProgress(identity.UserID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch dashboard data")
	}
	challengeRows, err := svc.sqlSvc.ListChallengeProgress(identity.UserID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch dashboard data")
	}
	userAchievements, err := svc.sqlSvc.GetUserAchievements(identity.UserID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch dashboard data")
	}

	now := time.Now()
	streak := shared.ComputeStreak(user.Streak, user.LastActiveAt, now)

	completedSet := map[string]bool{}
	completedLessons := []string{}
	lessonsCompleted := 0
	for _, lp := range lessonRows {
		if lp.Completed {
			lessonsCompleted++
			key := lp.ModuleID + "/" + lp.LessonID
			if !completedSet[key] {
				completedSet[key] = true
				completedLessons = append(completedLessons, key)
			}
		}
	}

	completedChallenges := []string{}
	challengesSolved := 0
	for _, cp := range challengeRows {
		if cp.Completed {
			challengesSolved++
			completedChallenges = append(completedChallenges, cp.ChallengeID)
		}
	}

	achievements := make([]dto.EarnedAchievement, 0, len(userAchievements))
	for _, ua := range userAchievements {
		achievements = append(achievements, dto.EarnedAchievement{
			ID:          ua.Achievement.Slug,
			Title:       ua.Achievement.Title,
			Description: ua.Achievement.Description,
			Icon:        ua.Achievement.Icon,
			EarnedAt:    ua.EarnedAt,
		})
	}

	resp := &dto.DashboardResponse{
		User: dto.DashboardUser{
			Name:       user.Name,
			Email:      user.Email,
			Image:      user.Image,
			XP:         user.XP,
			Level:      user.Level,
			Streak:     streak,
			JoinedDate: user.CreatedAt,
		},
		LessonsCompleted:    lessonsCompleted,
		ChallengesSolved:    challengesSolved,
		CompletedLessons:    completedLessons,
		CompletedChallenges: completedChallenges,
		Achievements:        achievements,
		NextLesson:          svc.catalogSvc.NextLesson(completedSet),
		RecentActivity:      svc.buildRecentActivity(lessonRows, challengeRows, userAchievements, now),
	}

	svc.cacheDashboard(identity.UserID, resp)
	return resp, nil
}

// InvalidateDashboard drops the cached view after a progress or achievement
// write.
func (svc *DashboardService) InvalidateDashboard(userID string) {
	if svc.redisSvc == nil {
		return
	}
	if err := svc.redisSvc.Delete(goContext.Background(), dashboardCachePrefix+userID); err != nil {
		log.WithField("user_id", userID).Warnf("Failed to invalidate dashboard cache: %v", err)
	}
}

func (svc *DashboardService) cachedDashboard(userID string) *dto.DashboardResponse {
	if svc.redisSvc == nil {
		return nil
	}
	var resp dto.DashboardResponse
	hit, err := svc.redisSvc.GetJSON(goContext.Background(), dashboardCachePrefix+userID, &resp)
	if err != nil {
		log.WithField("user_id", userID).Warnf("Dashboard cache read failed: %v", err)
		return nil
	}
	if !hit {
		return nil
	}
	return &resp
}

func (svc *DashboardService) cacheDashboard(userID string, resp *dto.DashboardResponse) {
	if svc.redisSvc == nil {
		return
	}
	if err := svc.redisSvc.Set(goContext.Background(), dashboardCachePrefix+userID, resp, svc.cacheTTL); err != nil {
		log.WithField("user_id", userID).Warnf("Dashboard cache write failed: %v", err)
	}
}

type activityEntry struct {
	item       dto.RecentActivityResponse
	occurredAt time.Time
}

// buildRecentActivity merges the 5 freshest completed lessons, challenges and
// badge grants, orders by the real timestamps and keeps the top 5. Display
// formatting happens only after the sort.
func (svc *DashboardService) buildRecentActivity(lessons []model.LessonProgress, challenges []model.ChallengeProgress, earned []model.UserAchievement, now time.Time) []dto.RecentActivityResponse {
	entries := []activityEntry{}

	for i, lp := range lessons {
		if i >= 5 {
			break
		}
		if lp.Completed && lp.CompletedAt != nil {
			entries = append(entries, activityEntry{
				occurredAt: *lp.CompletedAt,
				item: dto.RecentActivityResponse{
					ID:    lp.ID,
					Type:  shared.ActivityLesson,
					Title: humanizeID(lp.LessonID),
					XP:    shared.LessonXPReward,
				},
			})
		}
	}

	for i, cp := range challenges {
		if i >= 5 {
			break
		}
		if cp.Completed && cp.CompletedAt != nil {
			entries = append(entries, activityEntry{
				occurredAt: *cp.CompletedAt,
				item: dto.RecentActivityResponse{
					ID:    cp.ID,
					Type:  shared.ActivityChallenge,
					Title: humanizeID(cp.ChallengeID),
					XP:    shared.ChallengeXPReward,
				},
			})
		}
	}

	for i, ua := range earned {
		if i >= 5 {
			break
		}
		entries = append(entries, activityEntry{
			occurredAt: ua.EarnedAt,
			item: dto.RecentActivityResponse{
				ID:    ua.ID,
				Type:  shared.ActivityAchievement,
				Title: ua.Achievement.Title,
				XP:    ua.Achievement.XPReward,
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].occurredAt.After(entries[j].occurredAt)
	})

	if len(entries) > 5 {
		entries = entries[:5]
	}

	out := make([]dto.RecentActivityResponse, 0, len(entries))
	for _, e := range entries {
		item := e.item
		item.Time = shared.TimeAgo(e.occurredAt, now)
		out = append(out, item)
	}
	return out
}

// humanizeID turns a catalog id like "error-handling" into "Error Handling".
func humanizeID(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
