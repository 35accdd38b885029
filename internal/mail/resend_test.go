package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
)

func testMessage() model.ContactMessage {
	return model.ContactMessage{
		Reference: "cv37rs3pp9olc6atsptg",
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		Phone:     "11 99999-0000",
		Subject:   "Dúvida sobre rescisão",
		Message:   "Fui demitida e não recebi a multa do FGTS.",
	}
}

func TestResendSend_Success(t *testing.T) {
	var got resendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	c := NewResend("re_test_key", "Site <contato@example.com>", "atendimento@example.com", srv.URL)
	err := c.Send(context.Background(), testMessage())
	require.NoError(t, err)

	assert.Equal(t, "Site <contato@example.com>", got.From)
	assert.Equal(t, []string{"atendimento@example.com"}, got.To)
	assert.Equal(t, "maria@example.com", got.ReplyTo)
	assert.Equal(t, "[Contato] Dúvida sobre rescisão", got.Subject)
	assert.Contains(t, got.Text, "Maria Silva")
	assert.Contains(t, got.Text, "cv37rs3pp9olc6atsptg")
	assert.Contains(t, got.HTML, "Maria Silva")
}

func TestResendSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	c := NewResend("re_test_key", "bad", "atendimento@example.com", srv.URL)
	err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnavailable), "API errors must map to ErrUnavailable")
	// Provider internals must not leak into the message shown upstream.
	assert.NotContains(t, err.Error(), "invalid from address")
}

func TestResendSend_ProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	c := NewResend("re_test_key", "from", "to", srv.URL)
	err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnavailable))
}

func TestDisabledMailer(t *testing.T) {
	err := Disabled{}.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnavailable))
}

func TestHTMLBodyEscapesInput(t *testing.T) {
	msg := testMessage()
	msg.Name = `<script>alert("x")</script>`
	out := htmlBody(msg)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestTextBodyOptionalPhone(t *testing.T) {
	msg := testMessage()
	msg.Phone = ""
	assert.Contains(t, textBody(msg), "não informado")
}
