package domain

// Service is one offering shown on the public services page.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Price       string   `json:"price,omitempty"`
	Features    []string `json:"features"`
}

func (s Service) EntityID() string { return s.ID }
