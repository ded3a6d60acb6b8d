package domain

type TeamMember struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Position string      `json:"position"`
	Bio      string      `json:"bio"`
	Image    string      `json:"image"`
	Email    string      `json:"email"`
	Social   SocialLinks `json:"social"`
}

// SocialLinks holds optional profile URLs; empty fields are omitted when
// serialized.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

func (m TeamMember) EntityID() string { return m.ID }
