// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"fmt"
	"log/slog"
)

type Service struct {
	mailer Mailer
}

func NewService(mailer Mailer) *Service {
	return &Service{mailer: mailer}
}

// Submit delivers the message synchronously; the sender address goes into
// the body rather than the envelope so SPF on the relay stays intact.
func (s *Service) Submit(ctx context.Context, req ContactRequest) error {
	subject := fmt.Sprintf("Portfolio contact from %s", req.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", req.Name, req.Email, req.Message)

	if err := s.mailer.Send(subject, body); err != nil {
		slog.ErrorContext(ctx, "contact mail delivery failed",
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}
