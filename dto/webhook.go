package dto

// WebhookHeaders carries the three svix signature headers from a webhook
// delivery request.
type WebhookHeaders struct {
	ID        string
	Timestamp string
	Signature string
}

// Identity webhook DTOs (svix-delivered events from the identity provider).
type IdentityEvent struct {
	Type string           `json:"type"` // user.created, user.updated, user.deleted
	Data IdentityUserData `json:"data"`
}

type IdentityUserData struct {
	ID             string                 `json:"id"`
	EmailAddresses []IdentityEmailAddress `json:"email_addresses"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	ImageURL       string                 `json:"image_url"`
}

type IdentityEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first listed address, the provider orders the
// primary one first.
func (d IdentityUserData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

// FullName joins the name parts, skipping blanks.
func (d IdentityUserData) FullName() string {
	switch {
	case d.FirstName != "" && d.LastName != "":
		return d.FirstName + " " + d.LastName
	case d.FirstName != "":
		return d.FirstName
	default:
		return d.LastName
	}
}
