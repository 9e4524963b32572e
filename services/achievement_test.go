package services

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
)

func completeLessons(t *testing.T, store *PostgresService, userID string, lessonIDs []string) {
	t.Helper()
	progressSvc := &ProgressService{sqlSvc: store}
	for _, lesson := range lessonIDs {
		_, err := progressSvc.RecordLessonProgress(testIdentity(userID), dto.LessonProgressRequest{
			ModuleID:  "beginner",
			LessonID:  lesson,
			Completed: true,
		})
		require.NoError(t, err)
	}
}

func TestCheckAchievementsUnknownUser(t *testing.T) {
	svc, _ := newTestAchievementService(t)

	_, err := svc.CheckAchievements("user_missing")
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestCheckAchievementsNoProgress(t *testing.T) {
	svc, store := newTestAchievementService(t)
	createTestUser(t, store, "user_1")

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Empty(t, result.NewlyEarned)
	assert.Equal(t, "No new achievements earned", result.Message)
}

func TestCheckAchievementsGrantsFirstLesson(t *testing.T) {
	svc, store := newTestAchievementService(t)
	completeLessons(t, store, "user_1", []string{"setup"})

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"first-lesson"}, result.NewlyEarned)
	assert.Equal(t, "Earned 1 new achievement(s)!", result.Message)

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.LessonXPReward+25, user.XP, "badge XP lands on the balance")
}

func TestCheckAchievementsIsMonotonic(t *testing.T) {
	svc, store := newTestAchievementService(t)
	completeLessons(t, store, "user_1", []string{"setup"})

	first, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	require.Len(t, first.NewlyEarned, 1)

	second, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Empty(t, second.NewlyEarned, "a granted badge is never re-granted")

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.LessonXPReward+25, user.XP, "no double badge XP")
}

func TestCheckAchievementsMultipleGrants(t *testing.T) {
	svc, store := newTestAchievementService(t)
	lessons := []string{"setup", "variables", "control-flow", "loops", "functions",
		"arrays-slices", "maps", "structs", "methods", "interfaces"}
	completeLessons(t, store, "user_1", lessons)

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first-lesson", "ten-lessons"}, result.NewlyEarned)
	assert.Equal(t, "Earned 2 new achievement(s)!", result.Message)
}

func TestCheckAchievementsStreakUsesEffectiveStreak(t *testing.T) {
	svc, store := newTestAchievementService(t)
	user := createTestUser(t, store, "user_1")

	// Stored streak of 7 but last activity 3 days ago: effective streak is 0.
	require.NoError(t, store.Db().Model(user).Updates(map[string]interface{}{
		"streak":         7,
		"last_active_at": daysAgo(3),
	}).Error)

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Empty(t, result.NewlyEarned, "a lapsed streak must not grant the badge")

	// Active today with a stored streak of 7 grants Week Warrior.
	require.NoError(t, store.Db().Model(user).Update("last_active_at", time.Now()).Error)

	result, err = svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"week-streak"}, result.NewlyEarned)
}

func TestCheckAchievementsChallengeCategory(t *testing.T) {
	svc, store := newTestAchievementService(t)
	progressSvc := &ProgressService{sqlSvc: store}

	_, err := progressSvc.RecordChallengeProgress(testIdentity("user_1"), dto.ChallengeProgressRequest{
		ChallengeID: "hello-world",
		Completed:   true,
	})
	require.NoError(t, err)

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"first-challenge"}, result.NewlyEarned)
}

func TestCheckAchievementsSkipsBadRequirementPayload(t *testing.T) {
	svc, store := newTestAchievementService(t)
	completeLessons(t, store, "user_1", []string{"setup"})

	_, err := store.CreateAchievement(&model.Achievement{
		Slug:        "broken",
		Title:       "Broken Badge",
		Category:    "learning",
		Requirement: []byte("{not json"),
		XPReward:    10,
		IsActive:    true,
	})
	require.NoError(t, err)

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"first-lesson"}, result.NewlyEarned, "undecodable badge is skipped, not fatal")
}

func TestCheckAchievementsUnknownCategoryNeverGrants(t *testing.T) {
	svc, store := newTestAchievementService(t)
	completeLessons(t, store, "user_1", []string{"setup"})

	_, err := store.CreateAchievement(&model.Achievement{
		Slug:        "mystery",
		Title:       "Mystery Badge",
		Category:    "social",
		Requirement: mustRequirementJSON(t, model.AchievementRequirement{LessonsCompleted: 1}),
		XPReward:    10,
		IsActive:    true,
	})
	require.NoError(t, err)

	result, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)
	assert.NotContains(t, result.NewlyEarned, "mystery")
}

func TestGetAchievementsMarksEarned(t *testing.T) {
	svc, store := newTestAchievementService(t)
	completeLessons(t, store, "user_1", []string{"setup"})

	_, err := svc.CheckAchievements("user_1")
	require.NoError(t, err)

	achievements, err := svc.GetAchievements("user_1")
	require.NoError(t, err)
	require.Len(t, achievements, len(model.DefaultAchievements()))

	byslug := map[string]dto.AchievementResponse{}
	for _, a := range achievements {
		byslug[a.Slug] = a
	}

	assert.True(t, byslug["first-lesson"].Earned)
	require.NotNil(t, byslug["first-lesson"].EarnedAt)
	assert.False(t, byslug["week-streak"].Earned)
	assert.Nil(t, byslug["week-streak"].EarnedAt)
}

func TestQualifiesThresholds(t *testing.T) {
	req := model.AchievementRequirement{LessonsCompleted: 10}

	assert.False(t, qualifies(shared.CategoryLearning, req, 9, 0, 0, 0))
	assert.True(t, qualifies(shared.CategoryLearning, req, 10, 0, 0, 0))
	assert.True(t, qualifies(shared.CategoryLearning, req, 11, 0, 0, 0))

	// A zero threshold never grants, whatever the stat says.
	assert.False(t, qualifies(shared.CategoryXP, model.AchievementRequirement{}, 0, 0, 0, 99999))
}

func mustRequirementJSON(t *testing.T, req model.AchievementRequirement) []byte {
	t.Helper()
	b, err := sonic.Marshal(req)
	require.NoError(t, err)
	return b
}
