package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumTotals(t *testing.T) {
	svc := newTestCatalogService()

	curriculum := svc.Curriculum()
	require.Len(t, curriculum.Modules, 3)
	assert.Equal(t, 60, curriculum.TotalLessons)

	var counted int
	for _, m := range curriculum.Modules {
		counted += len(m.Lessons)
	}
	assert.Equal(t, curriculum.TotalLessons, counted)
}

func TestLessonLookup(t *testing.T) {
	svc := newTestCatalogService()

	assert.True(t, svc.LessonExists("beginner", "setup"))
	assert.True(t, svc.LessonExists("advanced", "capstone-6"))
	assert.False(t, svc.LessonExists("beginner", "goroutines"), "lesson exists but in another module")
	assert.False(t, svc.LessonExists("expert", "setup"))

	assert.Equal(t, "Go Setup & Hello World", svc.LessonTitle("beginner", "setup"))
	assert.Empty(t, svc.LessonTitle("beginner", "nope"))
}

func TestNextLessonWalksCatalogOrder(t *testing.T) {
	svc := newTestCatalogService()

	next := svc.NextLesson(map[string]bool{})
	require.NotNil(t, next)
	assert.Equal(t, "beginner", next.ModuleID)
	assert.Equal(t, "setup", next.LessonID)

	next = svc.NextLesson(map[string]bool{"beginner/setup": true})
	require.NotNil(t, next)
	assert.Equal(t, "variables", next.LessonID)

	// Skipping ahead does not change the pointer: the first gap wins.
	next = svc.NextLesson(map[string]bool{
		"beginner/setup":     true,
		"beginner/loops":     true,
		"beginner/functions": true,
	})
	require.NotNil(t, next)
	assert.Equal(t, "variables", next.LessonID)
}

func TestNextLessonNilWhenDone(t *testing.T) {
	svc := newTestCatalogService()

	completed := map[string]bool{}
	for _, m := range svc.Modules() {
		for _, l := range m.Lessons {
			completed[m.ID+"/"+l.ID] = true
		}
	}
	assert.Nil(t, svc.NextLesson(completed))
}

func TestChallengesStripSolutions(t *testing.T) {
	svc := newTestCatalogService()

	challenges := svc.Challenges()
	require.Len(t, challenges, 6)
	for _, c := range challenges {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Difficulty)
	}

	detail := svc.Challenge("fizzbuzz")
	require.NotNil(t, detail)
	assert.NotEmpty(t, detail.Solution)
	assert.NotEmpty(t, detail.StarterCode)
	assert.NotEmpty(t, detail.TestCases)

	assert.Nil(t, svc.Challenge("unknown"))
	assert.True(t, svc.ChallengeExists("hello-world"))
	assert.False(t, svc.ChallengeExists("unknown"))
}
