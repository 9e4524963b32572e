package dto

// Curriculum catalog DTOs
type ModuleResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Difficulty     string           `json:"difficulty"`
	EstimatedHours int              `json:"estimated_hours"`
	Color          string           `json:"color"`
	Icon           string           `json:"icon"`
	Lessons        []LessonResponse `json:"lessons"`
}

type LessonResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	Order       int    `json:"order"`
}

type CurriculumResponse struct {
	Modules      []ModuleResponse `json:"modules"`
	TotalLessons int              `json:"total_lessons"`
	TotalHours   int              `json:"total_hours"`
}

// Challenge catalog DTOs. The list view strips solutions; the detail view
// includes everything so the editor can show hints and run test cases.
type ChallengeSummaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"`
	Category      string `json:"category"`
	EstimatedTime int    `json:"estimated_time"` // minutes
}

type ChallengeDetailResponse struct {
	ChallengeSummaryResponse
	StarterCode string             `json:"starter_code"`
	TestCases   []TestCaseResponse `json:"test_cases"`
	Hints       []string           `json:"hints"`
	Solution    string             `json:"solution"`
}

type TestCaseResponse struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	Description    string `json:"description"`
}
