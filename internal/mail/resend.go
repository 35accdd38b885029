package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
)

// ResendClient sends email through the Resend HTTP API
// (POST /emails with a Bearer token).
type ResendClient struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

// NewResend creates a Resend-backed Mailer with a fixed sender and
// recipient. baseURL is overridable for tests; empty means the real API.
func NewResend(apiKey, from, to, baseURL string) *ResendClient {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &ResendClient{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

type resendError struct {
	Message string `json:"message"`
}

// Send relays one contact message. Any transport or API failure comes back
// as apperror.ErrUnavailable so the handler can answer with a retry hint
// without leaking provider internals.
func (c *ResendClient) Send(ctx context.Context, msg model.ContactMessage) error {
	body := resendRequest{
		From:    c.from,
		To:      []string{c.to},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("[Contato] %s", msg.Subject),
		Text:    textBody(msg),
		HTML:    htmlBody(msg),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("resend marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return apperror.Unavailable("email provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr resendError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return apperror.Unavailable(fmt.Sprintf("email provider rejected the message (status %d)", resp.StatusCode))
		}
		return apperror.Unavailable(fmt.Sprintf("email provider error (status %d)", resp.StatusCode))
	}

	return nil
}
