package http

import (
	"github.com/gin-gonic/gin"

	"leadloft/internal/interfaces/http/handlers"
	"leadloft/internal/interfaces/http/middleware"
)

// SetupRoutes builds the Gin engine and mounts every route. The public
// surface is deliberately small: registration, the Stripe webhook, the
// tracking redirect and a health probe; everything else sits behind JWT
// auth scoped to one agency.
func (c *Container) SetupRoutes() *gin.Engine {
	gin.SetMode(c.cfg.Server.Mode)
	handlers.RegisterValidations()

	engine := gin.New()
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// Prospect-facing redirect. Rate limited per IP, no auth.
	engine.GET("/t/:slug",
		middleware.ClickRateLimit(c.clickLimiter),
		c.trackingHandler.Redirect)

	api := engine.Group("/api/v1")

	// Public endpoints
	api.POST("/agencies", c.agencyHandler.Register)
	api.POST("/webhooks/stripe", c.billingHandler.Webhook)

	// Authenticated, agency-scoped endpoints
	authed := api.Group("")
	authed.Use(c.authMiddleware.RequireAuth())
	{
		authed.GET("/agency", c.agencyHandler.Get)

		members := authed.Group("/agency/members")
		{
			members.GET("", c.agencyHandler.ListMembers)

			// Membership changes are reserved to the owner; listing is not.
			members.POST("", c.authMiddleware.RequireOwner(), c.agencyHandler.InviteMember)
			members.DELETE("/:id", c.authMiddleware.RequireOwner(), c.agencyHandler.RemoveMember)
		}

		companies := authed.Group("/companies")
		{
			companies.POST("", c.companyHandler.Create)
			companies.GET("", c.companyHandler.List)
			companies.GET("/:id", c.companyHandler.Get)
			companies.PUT("/:id", c.companyHandler.Update)
			companies.DELETE("/:id", c.companyHandler.Delete)
		}

		projects := authed.Group("/projects")
		{
			projects.POST("", c.projectHandler.Create)
			projects.GET("", c.projectHandler.List)
			projects.GET("/:id", c.projectHandler.Get)
			projects.PUT("/:id", c.projectHandler.Update)
			projects.POST("/:id/archive", c.projectHandler.Archive)
		}

		opportunities := authed.Group("/opportunities")
		{
			opportunities.POST("", c.opportunityHandler.Create)
			opportunities.GET("", c.opportunityHandler.List)
			opportunities.PATCH("/:id", c.opportunityHandler.Update)
			opportunities.GET("/:id/timeline", c.opportunityHandler.GetTimeline)
			opportunities.POST("/:id/notes", c.opportunityHandler.AddNote)
			opportunities.POST("/:id/summary", c.opportunityHandler.Summarize)
		}

		links := authed.Group("/tracking/links")
		{
			links.POST("", c.trackingHandler.CreateLink)
			links.GET("", c.trackingHandler.ListLinks)
			links.DELETE("/:id", c.trackingHandler.DeleteLink)
		}

		authed.GET("/dashboard/engagement", c.dashboardHandler.Engagement)

		authed.GET("/billing/plan", c.billingHandler.GetPlan)

		billing := authed.Group("/billing")
		billing.Use(c.authMiddleware.RequireOwner())
		{
			billing.POST("/checkout", c.billingHandler.CreateCheckout)
		}
	}

	c.engine = engine
	return engine
}
