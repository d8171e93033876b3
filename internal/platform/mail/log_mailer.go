package mail

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/middleware"
)

// LogMailer writes mails to the request logger instead of sending them.
// It is the development transport.
type LogMailer struct {
	composer Composer
}

var _ portssvc.Mailer = (*LogMailer)(nil)

func NewLogMailer(composer Composer) *LogMailer {
	return &LogMailer{composer: composer}
}

func (m *LogMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	return m.log(ctx, m.composer.Verification(email, token))
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	return m.log(ctx, m.composer.PasswordReset(email, token))
}

func (m *LogMailer) log(ctx context.Context, msg *Message) error {
	middleware.GetLoggerFromCtx(ctx).Info("Mail not sent, logging instead",
		slog.String("kind", string(msg.Kind)),
		slog.String("to", msg.To),
		slog.String("link", msg.Link))
	return nil
}
