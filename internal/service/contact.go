package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/rs/xid"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	mailer "github.com/desenroladireito/desenrola-direito/internal/mail"
	"github.com/desenroladireito/desenrola-direito/internal/model"
)

// Contact form limits. Mirrors the public form's rules exactly:
// name ≥ 2, subject ≥ 3, message ≥ 10, phone optional.
const (
	MinContactNameLength    = 2
	MinContactSubjectLength = 3
	MinContactMessageLength = 10
	MaxContactFieldLength   = 200
	MaxContactMessageLength = 5000
)

// ContactService validates contact submissions and relays them through the
// mail bridge. Fire-and-once: no retry, no queue.
type ContactService struct {
	mailer mailer.Mailer
	logger *slog.Logger
}

func NewContactService(m mailer.Mailer, logger *slog.Logger) *ContactService {
	return &ContactService{
		mailer: m,
		logger: logger,
	}
}

// Submit validates the request and attempts the email send. On success it
// returns the server-assigned reference ID; a send failure surfaces as
// apperror.ErrUnavailable and the message is lost beyond the log line.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (string, error) {
	msg, err := validateContact(req)
	if err != nil {
		return "", err
	}
	msg.Reference = xid.New().String()

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("contact email send failed",
			slog.String("reference", msg.Reference),
			slog.String("email", msg.Email),
			slog.String("error", err.Error()),
		)
		if _, ok := err.(*apperror.AppError); ok {
			return "", err
		}
		return "", apperror.Unavailable("could not send your message")
	}

	s.logger.Info("contact message relayed",
		slog.String("reference", msg.Reference),
		slog.String("subject", msg.Subject),
	)
	return msg.Reference, nil
}

// validateContact applies the form rules and returns the normalized message.
// Rune counts, not bytes: "até breve" is 9 characters, not 10.
func validateContact(req model.ContactRequest) (model.ContactMessage, error) {
	var msg model.ContactMessage

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < MinContactNameLength {
		return msg, apperror.ValidationFailed("name", fmt.Sprintf("name must be at least %d characters", MinContactNameLength))
	}
	if utf8.RuneCountInString(name) > MaxContactFieldLength {
		return msg, apperror.ValidationFailed("name", fmt.Sprintf("name must be %d characters or less", MaxContactFieldLength))
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return msg, apperror.ValidationFailed("email", "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return msg, apperror.ValidationFailed("email", "email address is not valid")
	}

	subject := strings.TrimSpace(req.Subject)
	if utf8.RuneCountInString(subject) < MinContactSubjectLength {
		return msg, apperror.ValidationFailed("subject", fmt.Sprintf("subject must be at least %d characters", MinContactSubjectLength))
	}
	if utf8.RuneCountInString(subject) > MaxContactFieldLength {
		return msg, apperror.ValidationFailed("subject", fmt.Sprintf("subject must be %d characters or less", MaxContactFieldLength))
	}

	message := strings.TrimSpace(req.Message)
	if utf8.RuneCountInString(message) < MinContactMessageLength {
		return msg, apperror.ValidationFailed("message", fmt.Sprintf("message must be at least %d characters", MinContactMessageLength))
	}
	if utf8.RuneCountInString(message) > MaxContactMessageLength {
		return msg, apperror.ValidationFailed("message", fmt.Sprintf("message must be %d characters or less", MaxContactMessageLength))
	}

	return model.ContactMessage{
		Name:    name,
		Email:   addr.Address,
		Phone:   strings.TrimSpace(req.Phone),
		Subject: subject,
		Message: message,
	}, nil
}
