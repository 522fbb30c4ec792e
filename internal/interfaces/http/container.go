package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	agencyUsecases "leadloft/internal/application/agency/usecases"
	billingUsecases "leadloft/internal/application/billing/usecases"
	companyUsecases "leadloft/internal/application/company/usecases"
	"leadloft/internal/application/engagement"
	"leadloft/internal/application/entitlement"
	opportunityUsecases "leadloft/internal/application/opportunity/usecases"
	projectUsecases "leadloft/internal/application/project/usecases"
	trackingUsecases "leadloft/internal/application/tracking/usecases"
	"leadloft/internal/infrastructure/auth"
	"leadloft/internal/infrastructure/billing"
	"leadloft/internal/infrastructure/config"
	"leadloft/internal/infrastructure/email"
	"leadloft/internal/infrastructure/ratelimit"
	"leadloft/internal/infrastructure/repository"
	"leadloft/internal/interfaces/http/handlers"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/services/markdown"
)

// Container wires repositories, services, use cases and handlers. It is
// built once at startup by the server command.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	agencyHandler      *handlers.AgencyHandler
	companyHandler     *handlers.CompanyHandler
	projectHandler     *handlers.ProjectHandler
	opportunityHandler *handlers.OpportunityHandler
	trackingHandler    *handlers.TrackingHandler
	billingHandler     *handlers.BillingHandler
	dashboardHandler   *handlers.DashboardHandler

	authMiddleware *middleware.AuthMiddleware
	clickLimiter   ratelimit.Limiter
}

func NewContainer(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	// Repositories
	agencyRepo := repository.NewAgencyRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	opportunityRepo := repository.NewOpportunityRepository(gormDB)
	eventRepo := repository.NewOpportunityEventRepository(gormDB)
	linkRepo := repository.NewTrackingLinkRepository(gormDB)
	clickRepo := repository.NewTrackingClickRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
	billingGateway := billing.NewStripeGateway(billing.Config{
		SecretKey:     cfg.Billing.StripeSecretKey,
		WebhookSecret: cfg.Billing.StripeWebhookSecret,
		ProPriceID:    cfg.Billing.ProPriceID,
		SuccessURL:    cfg.Billing.CheckoutSuccessURL,
		CancelURL:     cfg.Billing.CheckoutCancelURL,
	})
	clickLimiter := ratelimit.NewRedisLimiter(redisClient,
		cfg.Tracking.ClicksPerMinute, cfg.Tracking.ClicksPerHour, log)
	markdownService := markdown.NewService()

	// Application services
	checker := entitlement.NewService(agencyRepo, projectRepo, memberRepo, log)
	engagementService := engagement.NewService(linkRepo, clickRepo, opportunityRepo, log)

	// Use cases
	registerAgencyUC := agencyUsecases.NewRegisterAgencyUseCase(agencyRepo, memberRepo, txManager, log)
	getAgencyUC := agencyUsecases.NewGetAgencyUseCase(agencyRepo, log)
	inviteMemberUC := agencyUsecases.NewInviteMemberUseCase(agencyRepo, memberRepo, checker, emailService, log)
	removeMemberUC := agencyUsecases.NewRemoveMemberUseCase(memberRepo, log)
	listMembersUC := agencyUsecases.NewListMembersUseCase(memberRepo, log)

	createCompanyUC := companyUsecases.NewCreateCompanyUseCase(companyRepo, log)
	updateCompanyUC := companyUsecases.NewUpdateCompanyUseCase(companyRepo, log)
	deleteCompanyUC := companyUsecases.NewDeleteCompanyUseCase(companyRepo, log)
	getCompanyUC := companyUsecases.NewGetCompanyUseCase(companyRepo, log)
	listCompaniesUC := companyUsecases.NewListCompaniesUseCase(companyRepo, log)

	createProjectUC := projectUsecases.NewCreateProjectUseCase(projectRepo, companyRepo, checker, log)
	getProjectUC := projectUsecases.NewGetProjectUseCase(projectRepo, log)
	listProjectsUC := projectUsecases.NewListProjectsUseCase(projectRepo, log)
	updateProjectUC := projectUsecases.NewUpdateProjectUseCase(projectRepo, log)
	archiveProjectUC := projectUsecases.NewArchiveProjectUseCase(projectRepo, log)

	createOpportunityUC := opportunityUsecases.NewCreateOpportunityUseCase(opportunityRepo, companyRepo, log)
	updateOpportunityUC := opportunityUsecases.NewUpdateOpportunityUseCase(opportunityRepo, eventRepo, log)
	listOpportunitiesUC := opportunityUsecases.NewListOpportunitiesUseCase(opportunityRepo, log)
	getTimelineUC := opportunityUsecases.NewGetTimelineUseCase(opportunityRepo, eventRepo, log)
	addNoteUC := opportunityUsecases.NewAddNoteUseCase(opportunityRepo, eventRepo, markdownService, log)
	summarizeUC := opportunityUsecases.NewSummarizeUseCase(opportunityRepo, eventRepo, checker, log)

	createLinkUC := trackingUsecases.NewCreateLinkUseCase(linkRepo, opportunityRepo, log)
	deleteLinkUC := trackingUsecases.NewDeleteLinkUseCase(linkRepo, log)
	listLinksUC := trackingUsecases.NewListLinksUseCase(linkRepo, log)
	recordClickUC := trackingUsecases.NewRecordClickUseCase(linkRepo, clickRepo, cfg.Tracking.VisitorSalt, log)

	createCheckoutUC := billingUsecases.NewCreateCheckoutUseCase(agencyRepo, billingGateway, log)
	handleWebhookUC := billingUsecases.NewHandleWebhookUseCase(agencyRepo, billingGateway, log)
	getPlanUC := billingUsecases.NewGetPlanUseCase(agencyRepo, projectRepo, memberRepo, log)

	return &Container{
		cfg: cfg,
		log: log,

		agencyHandler: handlers.NewAgencyHandler(
			registerAgencyUC, getAgencyUC, inviteMemberUC, removeMemberUC, listMembersUC, jwtService, log),
		companyHandler: handlers.NewCompanyHandler(
			createCompanyUC, updateCompanyUC, deleteCompanyUC, getCompanyUC, listCompaniesUC, log),
		projectHandler: handlers.NewProjectHandler(
			createProjectUC, getProjectUC, listProjectsUC, updateProjectUC, archiveProjectUC, log),
		opportunityHandler: handlers.NewOpportunityHandler(
			createOpportunityUC, updateOpportunityUC, listOpportunitiesUC,
			getTimelineUC, addNoteUC, summarizeUC, log),
		trackingHandler: handlers.NewTrackingHandler(
			createLinkUC, deleteLinkUC, listLinksUC, recordClickUC, log),
		billingHandler: handlers.NewBillingHandler(
			createCheckoutUC, handleWebhookUC, getPlanUC, log),
		dashboardHandler: handlers.NewDashboardHandler(engagementService, log),

		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		clickLimiter:   clickLimiter,
	}
}
