package domain

type PortfolioItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"coverImage"`
	ProjectImages []string `json:"projectImages"`
	Category      string   `json:"category"`
	Technologies  []string `json:"technologies"`
	URL           string   `json:"url,omitempty"`
	GithubURL     string   `json:"githubUrl,omitempty"`
}

func (p PortfolioItem) EntityID() string { return p.ID }
