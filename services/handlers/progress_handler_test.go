package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
)

type stubProgressService struct {
	lessonReq    *dto.LessonProgressRequest
	challengeReq *dto.ChallengeProgressRequest
	err          error
}

func (s *stubProgressService) GetLessonProgress(userID string) ([]model.LessonProgress, error) {
	return []model.LessonProgress{{UserID: userID, ModuleID: "beginner", LessonID: "setup"}}, s.err
}

func (s *stubProgressService) GetChallengeProgress(userID string) ([]model.ChallengeProgress, error) {
	return nil, s.err
}

func (s *stubProgressService) RecordLessonProgress(identity shared.Identity, req dto.LessonProgressRequest) (*model.LessonProgress, error) {
	s.lessonReq = &req
	if s.err != nil {
		return nil, s.err
	}
	return &model.LessonProgress{UserID: identity.UserID, ModuleID: req.ModuleID, LessonID: req.LessonID}, nil
}

func (s *stubProgressService) RecordChallengeProgress(identity shared.Identity, req dto.ChallengeProgressRequest) (*model.ChallengeProgress, error) {
	s.challengeReq = &req
	if s.err != nil {
		return nil, s.err
	}
	return &model.ChallengeProgress{UserID: identity.UserID, ChallengeID: req.ChallengeID}, nil
}

type stubDashboardService struct {
	invalidated []string
}

func (s *stubDashboardService) GetDashboard(identity shared.Identity) (*dto.DashboardResponse, error) {
	return &dto.DashboardResponse{}, nil
}

func (s *stubDashboardService) InvalidateDashboard(userID string) {
	s.invalidated = append(s.invalidated, userID)
}

func newTestApp(register func(app *fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := shared.GetAppError(err); ok {
				return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
			}
			return shared.ResponseInternalError(c)
		},
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(shared.UserID, "user_1")
		c.Locals(shared.UserEmail, "gopher@example.com")
		c.Locals(shared.UserName, "Go Gopher")
		return c.Next()
	})
	register(app)
	return app
}

func TestRecordLessonProgressHandler(t *testing.T) {
	progress := &stubProgressService{}
	dashboard := &stubDashboardService{}
	h := NewProgressHandler(progress, dashboard)

	app := newTestApp(func(app *fiber.App) {
		app.Post("/progress/lessons", h.RecordLessonProgress)
	})

	body := `{"moduleId":"beginner","lessonId":"variables","completed":true,"timeSpent":120}`
	req := httptest.NewRequest("POST", "/progress/lessons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, progress.lessonReq)
	assert.Equal(t, "beginner", progress.lessonReq.ModuleID)
	assert.Equal(t, "variables", progress.lessonReq.LessonID)
	assert.True(t, progress.lessonReq.Completed)
	assert.Equal(t, []string{"user_1"}, dashboard.invalidated, "a write invalidates the cached dashboard")
}

func TestRecordLessonProgressHandlerRejectsBadBody(t *testing.T) {
	progress := &stubProgressService{}
	dashboard := &stubDashboardService{}
	h := NewProgressHandler(progress, dashboard)

	app := newTestApp(func(app *fiber.App) {
		app.Post("/progress/lessons", h.RecordLessonProgress)
	})

	req := httptest.NewRequest("POST", "/progress/lessons", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, progress.lessonReq, "nothing reaches the service")
	assert.Empty(t, dashboard.invalidated)
}

func TestRecordChallengeProgressHandlerPropagatesAppErrors(t *testing.T) {
	progress := &stubProgressService{err: shared.NewBadRequestError(nil, "Challenge ID is required")}
	dashboard := &stubDashboardService{}
	h := NewProgressHandler(progress, dashboard)

	app := newTestApp(func(app *fiber.App) {
		app.Post("/progress/challenges", h.RecordChallengeProgress)
	})

	req := httptest.NewRequest("POST", "/progress/challenges", strings.NewReader(`{"challengeId":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Challenge ID is required")
	assert.Empty(t, dashboard.invalidated, "failed writes keep the cache")
}

func TestGetLessonProgressHandler(t *testing.T) {
	progress := &stubProgressService{}
	h := NewProgressHandler(progress, &stubDashboardService{})

	app := newTestApp(func(app *fiber.App) {
		app.Get("/progress/lessons", h.GetLessonProgress)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/progress/lessons", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"beginner"`)
}
