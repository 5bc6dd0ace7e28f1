// Package email sends the order confirmation emails through Resend.
//
// Every confirmed order produces two messages sent concurrently: a
// confirmation to the customer and an alert to the shop. Customer-supplied
// fields are HTML-escaped by the templates. Calls to the provider go through
// a circuit breaker so an outage fails fast instead of stalling the
// dispatch job.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"configurator/internal/core/ports"

	"github.com/resend/resend-go/v2"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFrom       = "HiniBricks <pedidos@hinibricks.cl>"
	DefaultAdminEmail = "ventas@hinibricks.cl"
)

// ErrMissingRecipient is returned for notifications without a customer email.
var ErrMissingRecipient = errors.New("notification has no customer email")

type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Config struct {
	APIKey     string
	From       string
	AdminEmail string
}

type ResendNotifier struct {
	emails  sender
	breaker *gobreaker.CircuitBreaker[*resend.SendEmailResponse]
	from    string
	admin   string
	logger  *slog.Logger
}

func NewResendNotifier(cfg Config, logger *slog.Logger) *ResendNotifier {
	return newResendNotifier(resend.NewClient(cfg.APIKey).Emails, cfg, logger)
}

func newResendNotifier(emails sender, cfg Config, logger *slog.Logger) *ResendNotifier {
	if cfg.From == "" {
		cfg.From = DefaultFrom
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = DefaultAdminEmail
	}
	logger = logger.With("component", "email_notifier")

	breaker := gobreaker.NewCircuitBreaker[*resend.SendEmailResponse](gobreaker.Settings{
		Name:        "resend",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &ResendNotifier{
		emails:  emails,
		breaker: breaker,
		from:    cfg.From,
		admin:   cfg.AdminEmail,
		logger:  logger,
	}
}

// NotifyOrderConfirmed sends both emails and waits for them. The first
// failure is returned; the other message is still attempted.
func (n *ResendNotifier) NotifyOrderConfirmed(ctx context.Context, notification ports.OrderNotification) error {
	if notification.CustomerEmail == "" {
		return ErrMissingRecipient
	}

	customerHTML, err := render(customerTemplate, notification)
	if err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}
	adminHTML, err := render(adminTemplate, notification)
	if err != nil {
		return fmt.Errorf("render admin email: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return n.send(ctx, "customer", &resend.SendEmailRequest{
			From:    n.from,
			To:      []string{notification.CustomerEmail},
			Subject: fmt.Sprintf("Pedido #%d confirmado – HiniBricks", notification.OrderID),
			Html:    customerHTML,
		})
	})
	g.Go(func() error {
		return n.send(ctx, "admin", &resend.SendEmailRequest{
			From:    n.from,
			To:      []string{n.admin},
			Subject: fmt.Sprintf("Nuevo pedido #%d – %s", notification.OrderID, notification.CustomerName),
			Html:    adminHTML,
		})
	})
	return g.Wait()
}

func (n *ResendNotifier) send(ctx context.Context, audience string, req *resend.SendEmailRequest) error {
	resp, err := n.breaker.Execute(func() (*resend.SendEmailResponse, error) {
		return n.emails.SendWithContext(ctx, req)
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to send email", "audience", audience, "error", err)
		return fmt.Errorf("send %s email: %w", audience, err)
	}

	id := ""
	if resp != nil {
		id = resp.Id
	}
	n.logger.InfoContext(ctx, "Email sent", "audience", audience, "email_id", id)
	return nil
}

// NoopNotifier stands in when no API key is configured.
type NoopNotifier struct {
	logger *slog.Logger
}

func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	logger = logger.With("component", "email_notifier")
	logger.Warn("RESEND_API_KEY is not set, order emails are disabled")
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) NotifyOrderConfirmed(ctx context.Context, notification ports.OrderNotification) error {
	n.logger.InfoContext(ctx, "Skipping order emails", "order_id", notification.OrderID)
	return nil
}
