package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WebhookService keeps the local user table in sync with the external
// identity provider. Events arrive signed with the svix scheme: an HMAC-SHA256
// over "<id>.<timestamp>.<body>" keyed by the shared webhook secret.
type WebhookService struct {
	context.DefaultService

	sqlSvc *PostgresService

	secret    []byte
	tolerance time.Duration
}

const WEBHOOK_SVC = "webhook_svc"

func (svc WebhookService) Id() string {
	return WEBHOOK_SVC
}

func (svc *WebhookService) Configure(ctx *context.Context) error {
	secret := os.Getenv("IDENTITY_WEBHOOK_SECRET")
	if secret != "" {
		key, err := decodeWebhookSecret(secret)
		if err != nil {
			return err
		}
		svc.secret = key
	}
	svc.tolerance = 5 * time.Minute
	return svc.DefaultService.Configure(ctx)
}

func (svc *WebhookService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	if svc.secret == nil {
		log.Warn("IDENTITY_WEBHOOK_SECRET not set, identity webhooks will be rejected")
	}
	return nil
}

// HandleIdentityEvent verifies the delivery signature and applies the event
// to the user table.
func (svc *WebhookService) HandleIdentityEvent(headers dto.WebhookHeaders, body []byte) error {
	if err := svc.verifySignature(headers, body); err != nil {
		return shared.NewBadRequestError(err, "Invalid webhook signature")
	}

	var event dto.IdentityEvent
	if err := sonic.Unmarshal(body, &event); err != nil {
		return shared.NewBadRequestError(err, "Invalid webhook payload")
	}

	switch event.Type {
	case "user.created":
		svc.applyCreate(event.Data)
	case "user.updated":
		svc.applyUpdate(event.Data)
	case "user.deleted":
		svc.applyDelete(event.Data)
	default:
		log.WithField("event_type", event.Type).Debug("Ignoring unhandled identity event")
	}

	// Delivery is acknowledged even when the apply step fails, the provider
	// would otherwise retry an event we cannot process.
	return nil
}

func (svc *WebhookService) applyCreate(data dto.IdentityUserData) {
	_, err := svc.sqlSvc.CreateUser(&model.User{
		ID:    data.ID,
		Email: data.PrimaryEmail(),
		Name:  data.FullName(),
		Image: data.ImageURL,
	})
	if err != nil && !IsConflict(err) {
		log.WithField("user_id", data.ID).Errorf("Failed to create user from webhook: %v", err)
	}
}

func (svc *WebhookService) applyUpdate(data dto.IdentityUserData) {
	err := svc.sqlSvc.UpdateUserIdentity(data.ID, data.PrimaryEmail(), data.FullName(), data.ImageURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Update for a user we never saw, the create event may have been
		// dropped.
		svc.applyCreate(data)
		return
	}
	if err != nil {
		log.WithField("user_id", data.ID).Errorf("Failed to update user from webhook: %v", err)
	}
}

func (svc *WebhookService) applyDelete(data dto.IdentityUserData) {
	if err := svc.sqlSvc.DeleteUser(data.ID); err != nil {
		log.WithField("user_id", data.ID).Errorf("Failed to delete user from webhook: %v", err)
	}
}

func (svc *WebhookService) verifySignature(headers dto.WebhookHeaders, body []byte) error {
	if headers.ID == "" || headers.Timestamp == "" || headers.Signature == "" {
		return fmt.Errorf("missing signature headers")
	}
	if svc.secret == nil {
		return fmt.Errorf("webhook secret not configured")
	}

	ts, err := strconv.ParseInt(headers.Timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp header")
	}
	age := time.Since(time.Unix(ts, 0))
	if age > svc.tolerance || age < -svc.tolerance {
		return fmt.Errorf("timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, svc.secret)
	fmt.Fprintf(mac, "%s.%s.", headers.ID, headers.Timestamp)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// The header holds space separated "<version>,<signature>" entries.
	for _, part := range strings.Split(headers.Signature, " ") {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return fmt.Errorf("no matching signature")
}

func decodeWebhookSecret(secret string) ([]byte, error) {
	trimmed := strings.TrimPrefix(secret, "whsec_")
	key, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid IDENTITY_WEBHOOK_SECRET: %w", err)
	}
	return key, nil
}
