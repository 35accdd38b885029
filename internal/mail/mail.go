// Package mail relays contact-form submissions through a transactional
// email provider. There is no retry and no outbox: a failed send is reported
// to the caller, logged, and lost — by the same contract as the original
// system.
package mail

import (
	"context"
	"fmt"
	"html"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
)

// Mailer sends one contact message. Implementations must honour ctx so a
// hanging provider cannot pin the HTTP request past its deadline.
type Mailer interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}

// Disabled is the Mailer used when no API key is configured. The server
// boots normally; sends fail at request time.
type Disabled struct{}

func (Disabled) Send(context.Context, model.ContactMessage) error {
	return apperror.Unavailable("email sending is not configured")
}

// textBody renders the plain-text part of the relayed email.
func textBody(msg model.ContactMessage) string {
	phone := msg.Phone
	if phone == "" {
		phone = "não informado"
	}
	return fmt.Sprintf(
		"Nova mensagem de contato (ref %s)\n\nNome: %s\nEmail: %s\nTelefone: %s\nAssunto: %s\n\n%s\n",
		msg.Reference, msg.Name, msg.Email, phone, msg.Subject, msg.Message,
	)
}

// htmlBody renders the HTML part. All user input is escaped; the contact
// form is an untrusted source like any other.
func htmlBody(msg model.ContactMessage) string {
	phone := msg.Phone
	if phone == "" {
		phone = "não informado"
	}
	return fmt.Sprintf(
		`<h2>Nova mensagem de contato</h2>
<p><strong>Referência:</strong> %s</p>
<p><strong>Nome:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telefone:</strong> %s</p>
<p><strong>Assunto:</strong> %s</p>
<hr>
<p>%s</p>`,
		html.EscapeString(msg.Reference),
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(phone),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)
}
