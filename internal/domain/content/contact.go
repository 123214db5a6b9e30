package content

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=40"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Validate checks the message's fields.
func (m *ContactMessage) Validate() error {
	return ValidateEntity(m)
}
