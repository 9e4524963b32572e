package dto

// Progress DTOs
type LessonProgressRequest struct {
	ModuleID  string `json:"moduleId" validate:"required" example:"beginner"`
	LessonID  string `json:"lessonId" validate:"required" example:"variables"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"timeSpent" validate:"gte=0" example:"120"`
}

func (r LessonProgressRequest) Validate() error {
	return validate.Struct(r)
}

type ChallengeProgressRequest struct {
	ChallengeID string `json:"challengeId" validate:"required" example:"fizzbuzz"`
	Completed   bool   `json:"completed"`
	Code        string `json:"code"`
	TimeSpent   *int   `json:"timeSpent,omitempty" validate:"omitempty,gte=0" example:"300"`
}

func (r ChallengeProgressRequest) Validate() error {
	return validate.Struct(r)
}
