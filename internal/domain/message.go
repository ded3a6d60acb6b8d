package domain

// ContactMessage is a submission from the public contact form or seed data.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

func (m ContactMessage) EntityID() string { return m.ID }
