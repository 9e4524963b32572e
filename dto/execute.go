package dto

type ExecuteRequest struct {
	Code string `json:"code" validate:"required"`
}

func (r ExecuteRequest) Validate() error {
	return validate.Struct(r)
}

// ExecuteResponse mirrors the Go Playground compile API payload.
type ExecuteResponse struct {
	Errors      string            `json:"Errors"`
	Events      []PlaygroundEvent `json:"Events"`
	Status      int               `json:"Status"`
	IsTest      bool              `json:"IsTest"`
	TestsFailed int               `json:"TestsFailed"`
	VetErrors   string            `json:"VetErrors,omitempty"`
	VetOK       bool              `json:"VetOK,omitempty"`
}

type PlaygroundEvent struct {
	Message string `json:"Message"`
	Kind    string `json:"Kind"` // stdout, stderr
	Delay   int64  `json:"Delay"`
}
