package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atelier-cms/internal/domain"
)

// buildRouter wires the health probes and the /admin content API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(deps.AllowedOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.KV))

	st := deps.Store
	admin := router.Group("/admin", authMiddleware(deps.AdminToken))

	collection[domain.Service]{
		name:  "services",
		list:  st.Services,
		save:  st.SaveServices,
		setID: func(v *domain.Service, id string) { v.ID = id },
	}.mount(admin, logger)

	collection[domain.Package]{
		name:  "packages",
		list:  st.Packages,
		save:  st.SavePackages,
		setID: func(v *domain.Package, id string) { v.ID = id },
	}.mount(admin, logger)

	collection[domain.TeamMember]{
		name:  "team-members",
		list:  st.TeamMembers,
		save:  st.SaveTeamMembers,
		setID: func(v *domain.TeamMember, id string) { v.ID = id },
	}.mount(admin, logger)

	collection[domain.Review]{
		name:  "reviews",
		list:  st.Reviews,
		save:  st.SaveReviews,
		setID: func(v *domain.Review, id string) { v.ID = id },
	}.mount(admin, logger)

	collection[domain.PortfolioItem]{
		name:  "portfolio-items",
		list:  st.PortfolioItems,
		save:  st.SavePortfolioItems,
		setID: func(v *domain.PortfolioItem, id string) { v.ID = id },
	}.mount(admin, logger)

	collection[domain.ContactMessage]{
		name:  "messages",
		list:  st.ContactMessages,
		save:  st.SaveContactMessages,
		setID: func(v *domain.ContactMessage, id string) { v.ID = id },
	}.mount(admin, logger)

	collection[domain.Order]{
		name:  "orders",
		list:  st.Orders,
		save:  st.SaveOrders,
		setID: func(v *domain.Order, id string) { v.ID = id },
		onCreate: func(v *domain.Order) {
			if v.OrderDate == "" {
				v.OrderDate = time.Now().UTC().Format("2006-01-02")
			}
			if v.Status == "" {
				v.Status = domain.OrderStatusPending
			}
		},
	}.mount(admin, logger)

	mountSingleton(admin, logger, "home-content", st.HomeContent, st.SaveHomeContent)
	mountSingleton(admin, logger, "contact-info", st.ContactInfo, st.SaveContactInfo)
	mountSingleton(admin, logger, "section-images", st.SectionImages, st.SaveSectionImages)

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cors.New(cfg)
}
