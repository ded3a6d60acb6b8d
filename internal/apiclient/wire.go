package apiclient

import "atelier-cms/internal/domain"

// The remote API speaks snake_case while the locally persisted schema is
// camelCase. The two are distinct systems; keep distinct types and map at
// this boundary instead of unifying the shapes.

type wireService struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Price       string   `json:"price,omitempty"`
	Features    []string `json:"features"`
}

func (w wireService) toDomain() domain.Service {
	return domain.Service{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Icon:        w.Icon,
		Price:       w.Price,
		Features:    w.Features,
	}
}

type wirePackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"is_popular"`
}

func (w wirePackage) toDomain() domain.Package {
	return domain.Package{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Duration:    w.Duration,
		Features:    w.Features,
		Popular:     w.IsPopular,
	}
}

type wireTeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Social   struct {
		LinkedIn string `json:"linkedin,omitempty"`
		Twitter  string `json:"twitter,omitempty"`
		GitHub   string `json:"github,omitempty"`
	} `json:"social_links"`
}

func (w wireTeamMember) toDomain() domain.TeamMember {
	return domain.TeamMember{
		ID:       w.ID,
		Name:     w.Name,
		Position: w.Position,
		Bio:      w.Bio,
		Image:    w.ImageURL,
		Email:    w.Email,
		Social: domain.SocialLinks{
			LinkedIn: w.Social.LinkedIn,
			Twitter:  w.Social.Twitter,
			GitHub:   w.Social.GitHub,
		},
	}
}

type wireReview struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	ImageURL   string `json:"image_url"`
	IsApproved bool   `json:"is_approved"`
}

func (w wireReview) toDomain() domain.Review {
	return domain.Review{
		ID:       w.ID,
		Name:     w.Name,
		Company:  w.Company,
		Rating:   w.Rating,
		Comment:  w.Comment,
		Image:    w.ImageURL,
		Approved: w.IsApproved,
	}
}

// newWireReview builds the POST body for a visitor review: the server assigns
// id and approval state, so neither is sent.
func newWireReview(r domain.Review) map[string]any {
	return map[string]any{
		"name":      r.Name,
		"company":   r.Company,
		"rating":    r.Rating,
		"comment":   r.Comment,
		"image_url": r.Image,
	}
}

type wireContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read"`
}

func (w wireContactMessage) toDomain() domain.ContactMessage {
	return domain.ContactMessage{
		ID:      w.ID,
		Name:    w.Name,
		Email:   w.Email,
		Subject: w.Subject,
		Message: w.Message,
		Read:    w.IsRead,
	}
}

func newWireContactMessage(m domain.ContactMessage) map[string]any {
	return map[string]any{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
		"message": m.Message,
	}
}

type wireContactInfo struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
	SocialLinks   struct {
		Facebook  string `json:"facebook,omitempty"`
		Twitter   string `json:"twitter,omitempty"`
		LinkedIn  string `json:"linkedin,omitempty"`
		Instagram string `json:"instagram,omitempty"`
	} `json:"social_links"`
}

func (w wireContactInfo) toDomain() domain.ContactInfo {
	return domain.ContactInfo{
		Email:         w.Email,
		Phone:         w.Phone,
		Address:       w.Address,
		BusinessHours: w.BusinessHours,
		SocialLinks: domain.SiteSocialLinks{
			Facebook:  w.SocialLinks.Facebook,
			Twitter:   w.SocialLinks.Twitter,
			LinkedIn:  w.SocialLinks.LinkedIn,
			Instagram: w.SocialLinks.Instagram,
		},
	}
}

type wireReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}
