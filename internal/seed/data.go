package seed

import "atelier-cms/internal/domain"

// Sample datasets, written verbatim into empty collections. IDs are plain
// ordinals; anything created through the admin API gets a generated id
// instead.

func sampleServices() []domain.Service {
	return []domain.Service{
		{
			ID:          "1",
			Title:       "Brand Identity",
			Description: "Naming, logo systems and visual guidelines that give your business a face people remember.",
			Icon:        "palette",
			Price:       "from $2,500",
			Features:    []string{"Logo design", "Brand guidelines", "Stationery kit"},
		},
		{
			ID:          "2",
			Title:       "Web Design & Development",
			Description: "Fast, responsive marketing sites designed in-house and built to last.",
			Icon:        "code",
			Price:       "from $4,000",
			Features:    []string{"Custom design", "CMS setup", "SEO foundations", "Analytics"},
		},
		{
			ID:          "3",
			Title:       "Marketing Campaigns",
			Description: "Launch campaigns across social and email with assets that stay on brand.",
			Icon:        "megaphone",
			Price:       "from $1,800",
			Features:    []string{"Campaign strategy", "Ad creatives", "Email templates"},
		},
		{
			ID:          "4",
			Title:       "Illustration & Print",
			Description: "Editorial illustration, packaging and print collateral.",
			Icon:        "pen-tool",
			Features:    []string{},
		},
	}
}

func samplePackages() []domain.Package {
	return []domain.Package{
		{
			ID:          "1",
			Name:        "Starter",
			Description: "A landing page and the essentials to get a new business online.",
			Price:       "$1,999",
			Duration:    "2-3 weeks",
			Features:    []string{"One-page site", "Logo refresh", "Contact form", "Basic SEO"},
			Popular:     false,
		},
		{
			ID:          "2",
			Name:        "Growth",
			Description: "A full marketing site plus the brand assets to support it.",
			Price:       "$4,999",
			Duration:    "4-6 weeks",
			Features:    []string{"Up to 8 pages", "Brand guidelines", "Blog setup", "Copywriting support", "3 months of tweaks"},
			Popular:     true,
		},
		{
			ID:          "3",
			Name:        "Studio",
			Description: "Everything in Growth plus campaign assets and ongoing design support.",
			Price:       "$9,499",
			Duration:    "8-10 weeks",
			Features:    []string{"Unlimited pages", "Full identity system", "Campaign kit", "Quarterly design retainer"},
			Popular:     false,
		},
	}
}

func sampleTeamMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{
			ID:       "1",
			Name:     "Mara Lindqvist",
			Position: "Creative Director",
			Bio:      "Founded the studio after a decade leading brand work at agencies in Stockholm and Vancouver.",
			Image:    "/images/team/mara.jpg",
			Email:    "mara@atelierstudio.co",
			Social:   domain.SocialLinks{LinkedIn: "https://linkedin.com/in/maralindqvist"},
		},
		{
			ID:       "2",
			Name:     "Devon Okafor",
			Position: "Lead Developer",
			Bio:      "Builds the sites the design team dreams up. Cares about load times more than most people care about anything.",
			Image:    "/images/team/devon.jpg",
			Email:    "devon@atelierstudio.co",
			Social: domain.SocialLinks{
				GitHub:  "https://github.com/devokafor",
				Twitter: "https://twitter.com/devokafor",
			},
		},
		{
			ID:       "3",
			Name:     "Priya Raghavan",
			Position: "Brand Designer",
			Bio:      "Identity systems, packaging and the occasional mural.",
			Image:    "/images/team/priya.jpg",
			Email:    "priya@atelierstudio.co",
			Social:   domain.SocialLinks{},
		},
	}
}

func sampleReviews() []domain.Review {
	return []domain.Review{
		{
			ID:       "1",
			Name:     "Jonas Meyer",
			Company:  "Meyer & Sons Roasting",
			Rating:   5,
			Comment:  "They rebuilt our brand from the ground up and sales from the website doubled within a quarter.",
			Image:    "/images/reviews/jonas.jpg",
			Approved: true,
		},
		{
			ID:       "2",
			Name:     "Alicia Fong",
			Company:  "Northbound Outfitters",
			Rating:   5,
			Comment:  "Fast, honest and the work speaks for itself. The Growth package was exactly what we needed.",
			Image:    "/images/reviews/alicia.jpg",
			Approved: true,
		},
		{
			ID:       "3",
			Name:     "Tomás Herrera",
			Company:  "Herrera Legal",
			Rating:   4,
			Comment:  "Great design sense. A couple of rounds more revisions than planned, but the result was worth it.",
			Image:    "",
			Approved: false,
		},
	}
}

func samplePortfolioItems() []domain.PortfolioItem {
	return []domain.PortfolioItem{
		{
			ID:          "1",
			Title:       "Meyer & Sons Rebrand",
			Description: "Full identity and e-commerce site for a third-generation coffee roaster.",
			CoverImage:  "/images/portfolio/meyer-cover.jpg",
			ProjectImages: []string{
				"/images/portfolio/meyer-1.jpg",
				"/images/portfolio/meyer-2.jpg",
				"/images/portfolio/meyer-3.jpg",
			},
			Category:     "Branding",
			Technologies: []string{"Figma", "Shopify"},
			URL:          "https://meyerandsons.example.com",
		},
		{
			ID:            "2",
			Title:         "Northbound Campaign Site",
			Description:   "Seasonal campaign microsite with lookbook and store locator.",
			CoverImage:    "/images/portfolio/northbound-cover.jpg",
			ProjectImages: []string{"/images/portfolio/northbound-1.jpg"},
			Category:      "Web",
			Technologies:  []string{"Vue", "Netlify"},
			URL:           "https://northbound.example.com",
			GithubURL:     "https://github.com/atelierstudio/northbound",
		},
		{
			ID:            "3",
			Title:         "Herrera Legal Identity",
			Description:   "Conservative but contemporary identity for a boutique law firm.",
			CoverImage:    "/images/portfolio/herrera-cover.jpg",
			ProjectImages: []string{},
			Category:      "Branding",
			Technologies:  []string{"Illustrator"},
		},
	}
}

func sampleContactMessages() []domain.ContactMessage {
	return []domain.ContactMessage{
		{
			ID:      "1",
			Name:    "Sofia Berg",
			Email:   "sofia.berg@example.com",
			Subject: "Website for a bakery",
			Message: "Hi! We are opening a second location this fall and need a proper website. Is the Starter package a fit?",
			Read:    false,
		},
		{
			ID:      "2",
			Name:    "Liam Pearce",
			Email:   "liam@pearcefit.example.com",
			Subject: "Rebrand quote",
			Message: "Looking for a quote on a full rebrand for a gym with three locations.",
			Read:    true,
		},
	}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:            "1",
			CustomerName:  "Sofia Berg",
			CustomerEmail: "sofia.berg@example.com",
			CustomerPhone: "+1 (555) 031-8847",
			PackageID:     "1",
			PackageName:   "Starter",
			PackagePrice:  "$1,999",
			Status:        domain.OrderStatusPending,
			OrderDate:     "2025-08-14",
			Notes:         "Wants to launch before October.",
		},
		{
			ID:            "2",
			CustomerName:  "Alicia Fong",
			CustomerEmail: "alicia@northbound.example.com",
			CustomerPhone: "+1 (555) 020-5561",
			PackageID:     "2",
			PackageName:   "Growth",
			PackagePrice:  "$4,999",
			Status:        domain.OrderStatusCompleted,
			OrderDate:     "2025-05-02",
		},
	}
}
