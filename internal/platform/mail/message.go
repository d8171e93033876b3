package mail

import (
	"encoding/json"
	"net/url"
	"time"
)

// Kind identifies the template a mail worker renders.
type Kind string

const (
	KindVerification  Kind = "verification"
	KindPasswordReset Kind = "password_reset"
)

// Message is an outbound mail job. Rendering and SMTP delivery are done by
// whatever consumes the queue.
type Message struct {
	Kind      Kind      `json:"kind"`
	To        string    `json:"to"`
	From      string    `json:"from"`
	Subject   string    `json:"subject"`
	Link      string    `json:"link"`
	Timestamp time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Composer builds messages with links into the frontend.
type Composer struct {
	FrontendBaseURL string
	From            string
}

// Verification builds the mail that carries the account confirmation link.
func (c Composer) Verification(email, token string) *Message {
	return &Message{
		Kind:      KindVerification,
		To:        email,
		From:      c.From,
		Subject:   "Potvrdite svoj račun",
		Link:      c.link("/nova-verifikacija", token),
		Timestamp: time.Now(),
	}
}

// PasswordReset builds the mail that carries the new password link.
func (c Composer) PasswordReset(email, token string) *Message {
	return &Message{
		Kind:      KindPasswordReset,
		To:        email,
		From:      c.From,
		Subject:   "Postavite novu lozinku",
		Link:      c.link("/nova-lozinka", token),
		Timestamp: time.Now(),
	}
}

func (c Composer) link(path, token string) string {
	return c.FrontendBaseURL + path + "?token=" + url.QueryEscape(token)
}
