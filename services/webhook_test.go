package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

var testWebhookKey = []byte("0123456789abcdef0123456789abcdef")

func newTestWebhookService(t *testing.T) (*WebhookService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	return &WebhookService{
		sqlSvc:    store,
		secret:    testWebhookKey,
		tolerance: 5 * time.Minute,
	}, store
}

func signWebhook(id, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, testWebhookKey)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func signedHeaders(body []byte) dto.WebhookHeaders {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	return dto.WebhookHeaders{
		ID:        "msg_1",
		Timestamp: ts,
		Signature: signWebhook("msg_1", ts, body),
	}
}

func TestHandleIdentityEventMissingHeaders(t *testing.T) {
	svc, _ := newTestWebhookService(t)

	err := svc.HandleIdentityEvent(dto.WebhookHeaders{}, []byte(`{}`))
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestHandleIdentityEventBadSignature(t *testing.T) {
	svc, _ := newTestWebhookService(t)

	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	headers := signedHeaders(body)
	headers.Signature = "v1,AAAA"

	err := svc.HandleIdentityEvent(headers, body)
	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestHandleIdentityEventStaleTimestamp(t *testing.T) {
	svc, _ := newTestWebhookService(t)

	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	ts := fmt.Sprintf("%d", time.Now().Add(-time.Hour).Unix())
	headers := dto.WebhookHeaders{
		ID:        "msg_1",
		Timestamp: ts,
		Signature: signWebhook("msg_1", ts, body),
	}

	err := svc.HandleIdentityEvent(headers, body)
	require.Error(t, err)
}

func TestHandleIdentityEventUserCreated(t *testing.T) {
	svc, store := newTestWebhookService(t)

	body := []byte(`{
		"type": "user.created",
		"data": {
			"id": "user_1",
			"email_addresses": [{"id": "idn_1", "email_address": "gopher@example.com"}],
			"first_name": "Go",
			"last_name": "Pher",
			"image_url": "https://img.example.com/1.png"
		}
	}`)

	require.NoError(t, svc.HandleIdentityEvent(signedHeaders(body), body))

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, "gopher@example.com", user.Email)
	assert.Equal(t, "Go Pher", user.Name)
	assert.Equal(t, "https://img.example.com/1.png", user.Image)
	assert.Equal(t, 1, user.Level)
}

func TestHandleIdentityEventUserUpdated(t *testing.T) {
	svc, store := newTestWebhookService(t)
	createTestUser(t, store, "user_1")

	body := []byte(`{
		"type": "user.updated",
		"data": {
			"id": "user_1",
			"email_addresses": [{"id": "idn_1", "email_address": "renamed@example.com"}],
			"first_name": "Renamed"
		}
	}`)

	require.NoError(t, svc.HandleIdentityEvent(signedHeaders(body), body))

	user, err := store.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", user.Email)
	assert.Equal(t, "Renamed", user.Name)
}

func TestHandleIdentityEventUpdateFallsBackToCreate(t *testing.T) {
	svc, store := newTestWebhookService(t)

	body := []byte(`{
		"type": "user.updated",
		"data": {
			"id": "user_never_seen",
			"email_addresses": [{"id": "idn_1", "email_address": "late@example.com"}],
			"first_name": "Late"
		}
	}`)

	require.NoError(t, svc.HandleIdentityEvent(signedHeaders(body), body))

	user, err := store.GetUser("user_never_seen")
	require.NoError(t, err)
	assert.Equal(t, "late@example.com", user.Email)
}

func TestHandleIdentityEventUserDeleted(t *testing.T) {
	svc, store := newTestWebhookService(t)
	createTestUser(t, store, "user_1")

	body := []byte(`{"type": "user.deleted", "data": {"id": "user_1"}}`)
	require.NoError(t, svc.HandleIdentityEvent(signedHeaders(body), body))

	_, err := store.GetUser("user_1")
	require.Error(t, err)
}

func TestHandleIdentityEventUnknownTypeIsAcknowledged(t *testing.T) {
	svc, _ := newTestWebhookService(t)

	body := []byte(`{"type": "session.created", "data": {"id": "sess_1"}}`)
	require.NoError(t, svc.HandleIdentityEvent(signedHeaders(body), body))
}

func TestIdentityUserDataHelpers(t *testing.T) {
	data := dto.IdentityUserData{FirstName: "Go"}
	assert.Equal(t, "Go", data.FullName())
	assert.Empty(t, data.PrimaryEmail())

	data.LastName = "Pher"
	assert.Equal(t, "Go Pher", data.FullName())
}

func TestDecodeWebhookSecret(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(testWebhookKey)

	key, err := decodeWebhookSecret("whsec_" + encoded)
	require.NoError(t, err)
	assert.Equal(t, testWebhookKey, key)

	// The prefix is optional.
	key, err = decodeWebhookSecret(encoded)
	require.NoError(t, err)
	assert.Equal(t, testWebhookKey, key)

	_, err = decodeWebhookSecret("whsec_!!!")
	require.Error(t, err)
}
