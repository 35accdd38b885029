package model

// ContactRequest is the payload of POST /api/contact, before validation.
// Phone is optional; everything else is required.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactMessage is a validated contact submission ready to be relayed by
// the mail bridge. Reference is a server-assigned ID returned to the sender
// so a lost email can at least be correlated with the logs.
type ContactMessage struct {
	Reference string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
}
