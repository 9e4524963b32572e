package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

func TestRecordLessonProgressRequiresIDs(t *testing.T) {
	svc, store := newTestProgressService(t)

	_, err := svc.RecordLessonProgress(testIdentity("user_1"), dto.LessonProgressRequest{
		LessonID: "setup",
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)

	// Nothing stored and no user row created on validation failure.
	rows, err := store.ListLessonProgress("user_1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecordLessonProgressFirstCompletionAwardsXP(t *testing.T) {
	svc, store := newTestProgressService(t)

	lp, err := svc.RecordLessonProgress(testIdentity("user_1"), dto.LessonProgressRequest{
		ModuleID:  "beginner",
		LessonID:  "setup",
		Completed: true,
		TimeSpent: 120,
	})
	require.NoError(t, err)
	assert.True(t, lp.Completed)
	require.NotNil(t, lp.CompletedAt)
	assert.Equal(t, 120, lp.TimeSpent)

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.LessonXPReward, user.XP)
	assert.Equal(t, 1, user.Streak)
	require.NotNil(t, user.LastActiveAt)
}

func TestRecordLessonProgressSecondCompletionIsIdempotent(t *testing.T) {
	svc, store := newTestProgressService(t)
	identity := testIdentity("user_1")

	req := dto.LessonProgressRequest{
		ModuleID:  "beginner",
		LessonID:  "setup",
		Completed: true,
		TimeSpent: 100,
	}
	_, err := svc.RecordLessonProgress(identity, req)
	require.NoError(t, err)

	lp, err := svc.RecordLessonProgress(identity, req)
	require.NoError(t, err)
	assert.True(t, lp.Completed)
	assert.Equal(t, 200, lp.TimeSpent, "time keeps accumulating")

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.LessonXPReward, user.XP, "no double award")
}

func TestRecordLessonProgressIncompleteThenComplete(t *testing.T) {
	svc, store := newTestProgressService(t)
	identity := testIdentity("user_1")

	lp, err := svc.RecordLessonProgress(identity, dto.LessonProgressRequest{
		ModuleID:  "beginner",
		LessonID:  "variables",
		TimeSpent: 60,
	})
	require.NoError(t, err)
	assert.False(t, lp.Completed)
	assert.Nil(t, lp.CompletedAt)

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Zero(t, user.XP)
	assert.Nil(t, user.LastActiveAt, "incomplete progress is not qualifying activity")

	lp, err = svc.RecordLessonProgress(identity, dto.LessonProgressRequest{
		ModuleID:  "beginner",
		LessonID:  "variables",
		Completed: true,
		TimeSpent: 30,
	})
	require.NoError(t, err)
	assert.True(t, lp.Completed)
	assert.Equal(t, 90, lp.TimeSpent)

	user, err = store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.LessonXPReward, user.XP)
}

func TestRecordLessonProgressLevelsUp(t *testing.T) {
	svc, store := newTestProgressService(t)
	identity := testIdentity("user_1")

	lessons := []string{"setup", "variables", "control-flow", "loops", "functions", "arrays-slices", "maps", "structs"}
	for _, lesson := range lessons {
		_, err := svc.RecordLessonProgress(identity, dto.LessonProgressRequest{
			ModuleID:  "beginner",
			LessonID:  lesson,
			Completed: true,
		})
		require.NoError(t, err)
	}

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, 400, user.XP)
	assert.Equal(t, 3, user.Level, "level = floor(sqrt(400/100)) + 1")
}

func TestRecordChallengeProgressAttemptsAndBestTime(t *testing.T) {
	svc, store := newTestProgressService(t)
	identity := testIdentity("user_1")

	first := 90
	cp, err := svc.RecordChallengeProgress(identity, dto.ChallengeProgressRequest{
		ChallengeID: "fizzbuzz",
		Code:        "package main",
		TimeSpent:   &first,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cp.Attempts)
	assert.False(t, cp.Completed)
	require.NotNil(t, cp.BestTime)
	assert.Equal(t, 90, *cp.BestTime)

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Zero(t, user.XP, "failed attempts never award XP")

	second := 45
	cp, err = svc.RecordChallengeProgress(identity, dto.ChallengeProgressRequest{
		ChallengeID: "fizzbuzz",
		Completed:   true,
		Code:        "package main // v2",
		TimeSpent:   &second,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cp.Attempts)
	assert.True(t, cp.Completed)
	assert.Equal(t, 45, *cp.BestTime)
	assert.Equal(t, "package main // v2", cp.Code)

	user, err = store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.ChallengeXPReward, user.XP)

	// A slower re-solve keeps the best time and awards nothing.
	third := 200
	cp, err = svc.RecordChallengeProgress(identity, dto.ChallengeProgressRequest{
		ChallengeID: "fizzbuzz",
		Completed:   true,
		TimeSpent:   &third,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cp.Attempts)
	assert.Equal(t, 45, *cp.BestTime)

	user, err = store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, shared.ChallengeXPReward, user.XP)
}

func TestRecordChallengeProgressEmptyCodeKeepsLastSubmission(t *testing.T) {
	svc, store := newTestProgressService(t)
	identity := testIdentity("user_1")

	_, err := svc.RecordChallengeProgress(identity, dto.ChallengeProgressRequest{
		ChallengeID: "palindrome",
		Code:        "func isPalindrome() {}",
	})
	require.NoError(t, err)

	cp, err := svc.RecordChallengeProgress(identity, dto.ChallengeProgressRequest{
		ChallengeID: "palindrome",
	})
	require.NoError(t, err)
	assert.Equal(t, "func isPalindrome() {}", cp.Code)

	rows, err := store.ListChallengeProgress(identity.UserID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestAdvanceStreak(t *testing.T) {
	tests := []struct {
		name       string
		streak     int
		lastActive *time.Time
		want       int
	}{
		{"first activity", 0, nil, 1},
		{"same day", 3, daysAgo(0), 3},
		{"next day", 3, daysAgo(1), 4},
		{"gap resets", 9, daysAgo(2), 1},
		{"long gap resets", 30, daysAgo(14), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestProgressService(t)
			user := createTestUser(t, store, "user_1")
			require.NoError(t, store.StampActivity(user.ID, time.Now(), tt.streak))
			if tt.lastActive == nil {
				require.NoError(t, store.Db().Model(user).UpdateColumn("last_active_at", nil).Error)
			} else {
				require.NoError(t, store.Db().Model(user).UpdateColumn("last_active_at", tt.lastActive).Error)
			}

			svc.advanceStreak(user.ID, time.Now())

			got, err := store.GetUser(user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Streak)
			require.NotNil(t, got.LastActiveAt)
			assert.WithinDuration(t, time.Now(), *got.LastActiveAt, 5*time.Second)
		})
	}
}

func TestEnsureUserCreatesLazily(t *testing.T) {
	svc, store := newTestProgressService(t)

	require.NoError(t, svc.ensureUser(shared.Identity{UserID: "user_new", Email: "new@example.com"}))

	user, err := store.GetUser("user_new")
	require.NoError(t, err)
	assert.Equal(t, "Learner", user.Name, "missing claim falls back to default name")
	assert.Equal(t, 1, user.Level)

	// Second call is a no-op against the existing row.
	require.NoError(t, svc.ensureUser(testIdentity("user_new")))
}

func TestLazyUserCreateAllowsMissingEmailClaims(t *testing.T) {
	svc, store := newTestProgressService(t)

	// Tokens without an email claim mirror distinct users with empty emails.
	for _, userID := range []string{"user_a", "user_b"} {
		_, err := svc.RecordLessonProgress(shared.Identity{UserID: userID}, dto.LessonProgressRequest{
			ModuleID:  "beginner",
			LessonID:  "setup",
			Completed: true,
		})
		require.NoError(t, err)

		user, err := store.GetUser(userID)
		require.NoError(t, err)
		assert.Empty(t, user.Email)
		assert.Equal(t, shared.LessonXPReward, user.XP)
	}
}

func TestRecordChallengeProgressRejectsNegativeTimeSpent(t *testing.T) {
	svc, store := newTestProgressService(t)
	timeSpent := -5

	_, err := svc.RecordChallengeProgress(testIdentity("user_1"), dto.ChallengeProgressRequest{
		ChallengeID: "fizzbuzz",
		Completed:   true,
		TimeSpent:   &timeSpent,
	})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)

	rows, err := store.ListChallengeProgress("user_1")
	require.NoError(t, err)
	assert.Empty(t, rows, "a negative time never reaches bestTime")
}
