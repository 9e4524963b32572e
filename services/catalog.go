package services

import (
	"github.com/alphabatem/common/context"
	"github.com/gopherpath/gopherpath_api/dto"
)

// CatalogService owns the static curriculum and challenge catalogs. The
// catalogs are compiled in, there is no database table behind them.
type CatalogService struct {
	context.DefaultService

	modules    []dto.ModuleResponse
	challenges []dto.ChallengeDetailResponse
}

const CATALOG_SVC = "catalog_svc"

func (svc CatalogService) Id() string {
	return CATALOG_SVC
}

func (svc *CatalogService) Configure(ctx *context.Context) error {
	svc.modules = curriculumModules()
	svc.challenges = challengeCatalog()
	return svc.DefaultService.Configure(ctx)
}

func (svc *CatalogService) Start() error {
	return nil
}

func (svc *CatalogService) Modules() []dto.ModuleResponse {
	return svc.modules
}

func (svc *CatalogService) Curriculum() dto.CurriculumResponse {
	total := 0
	hours := 0
	for _, m := range svc.modules {
		total += len(m.Lessons)
		hours += m.EstimatedHours
	}
	return dto.CurriculumResponse{
		Modules:      svc.modules,
		TotalLessons: total,
		TotalHours:   hours,
	}
}

// LessonExists reports whether the (module, lesson) pair is in the catalog.
func (svc *CatalogService) LessonExists(moduleID, lessonID string) bool {
	for _, m := range svc.modules {
		if m.ID != moduleID {
			continue
		}
		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return true
			}
		}
	}
	return false
}

// LessonTitle returns the display title for a catalog lesson, empty if the
// lesson is unknown.
func (svc *CatalogService) LessonTitle(moduleID, lessonID string) string {
	for _, m := range svc.modules {
		if m.ID != moduleID {
			continue
		}
		for _, l := range m.Lessons {
			if l.ID == lessonID {
				return l.Title
			}
		}
	}
	return ""
}

// NextLesson walks modules then lessons in catalog order and returns the
// first lesson whose "moduleId/lessonId" key is not in completed. Nil when
// everything is done.
func (svc *CatalogService) NextLesson(completed map[string]bool) *dto.NextLessonResponse {
	for _, m := range svc.modules {
		for _, l := range m.Lessons {
			if !completed[m.ID+"/"+l.ID] {
				return &dto.NextLessonResponse{
					ModuleID: m.ID,
					LessonID: l.ID,
					Title:    l.Title,
				}
			}
		}
	}
	return nil
}

// Challenges returns the list view with solutions stripped.
func (svc *CatalogService) Challenges() []dto.ChallengeSummaryResponse {
	out := make([]dto.ChallengeSummaryResponse, 0, len(svc.challenges))
	for _, c := range svc.challenges {
		out = append(out, c.ChallengeSummaryResponse)
	}
	return out
}

func (svc *CatalogService) Challenge(id string) *dto.ChallengeDetailResponse {
	for i := range svc.challenges {
		if svc.challenges[i].ID == id {
			return &svc.challenges[i]
		}
	}
	return nil
}

func (svc *CatalogService) ChallengeExists(id string) bool {
	return svc.Challenge(id) != nil
}
