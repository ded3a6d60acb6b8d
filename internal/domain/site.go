package domain

// HomeContent is the singleton record behind the landing page.
type HomeContent struct {
	HeroTitle        string   `json:"heroTitle"`
	HeroSubtitle     string   `json:"heroSubtitle"`
	HeroImage        string   `json:"heroImage"`
	CTAButtonText    string   `json:"ctaButtonText"`
	CTAButtonLink    string   `json:"ctaButtonLink"`
	AboutText        string   `json:"aboutText"`
	FeaturedServices []string `json:"featuredServices"`
}

// ContactInfo is the singleton record shown on the contact page.
type ContactInfo struct {
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	BusinessHours string          `json:"businessHours"`
	SocialLinks   SiteSocialLinks `json:"socialLinks"`
}

type SiteSocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// SectionImages holds the hero image per public page section, as a URL or an
// embedded data URI.
type SectionImages struct {
	HomeHero      string `json:"homeHero"`
	ServicesHero  string `json:"servicesHero"`
	PackagesHero  string `json:"packagesHero"`
	TeamHero      string `json:"teamHero"`
	PortfolioHero string `json:"portfolioHero"`
	ContactHero   string `json:"contactHero"`
}

// Singleton defaults. These are returned on empty reads without ever being
// written to storage; keep every default here so no value is duplicated at
// call sites.

func DefaultHomeContent() HomeContent {
	return HomeContent{
		HeroTitle:        "Design that moves your brand forward",
		HeroSubtitle:     "We craft identities, websites and campaigns for ambitious small businesses.",
		HeroImage:        "/images/hero/home.jpg",
		CTAButtonText:    "Start a project",
		CTAButtonLink:    "/contact",
		AboutText:        "Atelier is a small design studio helping brands look as good as the work they do. Strategy, identity and digital under one roof.",
		FeaturedServices: []string{},
	}
}

func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		Email:         "hello@atelierstudio.co",
		Phone:         "+1 (555) 014-2230",
		Address:       "214 Granville Street, Suite 301, Vancouver, BC",
		BusinessHours: "Mon-Fri, 9:00-18:00 PT",
	}
}

func DefaultSectionImages() SectionImages {
	return SectionImages{
		HomeHero:      "/images/hero/home.jpg",
		ServicesHero:  "/images/hero/services.jpg",
		PackagesHero:  "/images/hero/packages.jpg",
		TeamHero:      "/images/hero/team.jpg",
		PortfolioHero: "/images/hero/portfolio.jpg",
		ContactHero:   "/images/hero/contact.jpg",
	}
}
