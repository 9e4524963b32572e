package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

func newTestExecuteService(url string) *ExecuteService {
	return &ExecuteService{
		client:        &http.Client{Timeout: 5 * time.Second},
		playgroundURL: url,
	}
}

func TestExecuteRequiresCode(t *testing.T) {
	svc := newTestExecuteService("http://unused.invalid")

	_, err := svc.Execute(dto.ExecuteRequest{})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Code is required", appErr.Message)
}

func TestExecuteProxiesToPlayground(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2", r.FormValue("version"))
		assert.Equal(t, "package main", r.FormValue("body"))
		assert.Equal(t, "true", r.FormValue("withVet"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Errors": "",
			"Events": [{"Message": "hello\n", "Kind": "stdout", "Delay": 0}],
			"Status": 0,
			"VetOK": true
		}`))
	}))
	defer server.Close()

	svc := newTestExecuteService(server.URL)

	out, err := svc.Execute(dto.ExecuteRequest{Code: "package main"})
	require.NoError(t, err)
	assert.Empty(t, out.Errors)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "hello\n", out.Events[0].Message)
	assert.Equal(t, "stdout", out.Events[0].Kind)
	assert.True(t, out.VetOK)
}

func TestExecutePlaygroundFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newTestExecuteService(server.URL)

	_, err := svc.Execute(dto.ExecuteRequest{Code: "package main"})
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode)
	assert.Equal(t, "Failed to compile code", appErr.Message)
}
