package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

// ExecuteService proxies code snippets to the Go playground compile endpoint
// so the browser never talks to it cross-origin.
type ExecuteService struct {
	context.DefaultService

	client        *http.Client
	playgroundURL string
}

const EXECUTE_SVC = "execute_svc"

const defaultPlaygroundURL = "https://go.dev/_/compile"

func (svc ExecuteService) Id() string {
	return EXECUTE_SVC
}

func (svc *ExecuteService) Configure(ctx *context.Context) error {
	svc.playgroundURL = os.Getenv("PLAYGROUND_URL")
	if svc.playgroundURL == "" {
		svc.playgroundURL = defaultPlaygroundURL
	}
	svc.client = &http.Client{Timeout: 30 * time.Second}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ExecuteService) Start() error {
	return nil
}

// Execute compiles and runs the snippet remotely, vet included.
func (svc *ExecuteService) Execute(req dto.ExecuteRequest) (*dto.ExecuteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewBadRequestError(err, "Code is required")
	}

	form := url.Values{}
	form.Set("version", "2")
	form.Set("body", req.Code)
	form.Set("withVet", "true")

	httpReq, err := http.NewRequest(http.MethodPost, svc.playgroundURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to compile code")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := svc.client.Do(httpReq)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to compile code")
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to compile code")
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, shared.NewInternalError(fmt.Errorf("playground returned %d", httpResp.StatusCode), "Failed to compile code")
	}

	var out dto.ExecuteResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, shared.NewInternalError(err, "Failed to compile code")
	}
	return &out, nil
}
