package domain

// Review is a client testimonial. Approved gates public visibility; Rating is
// nominally 1-5 but nothing below the admin form enforces the bounds.
type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Image    string `json:"image"`
	Approved bool   `json:"approved"`
}

func (r Review) EntityID() string { return r.ID }
