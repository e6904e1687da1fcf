package routes

import (
	"log"

	"berkconnect-backend/internal/api/handlers"
	"berkconnect-backend/internal/api/middleware"
	"berkconnect-backend/internal/auth"
	"berkconnect-backend/internal/config"
	"berkconnect-backend/internal/repository"
	"berkconnect-backend/internal/service"
	"berkconnect-backend/internal/teachercheck"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	txManager := repository.NewGormTxManager(db)
	clubRepo := repository.NewClubRepository(db)
	memberRepo := repository.NewClubMemberRepository(db)
	sponsorRepo := repository.NewClubSponsorRepository(db)
	userRepo := repository.NewUserRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	requestRepo := repository.NewLeadershipRequestRepository(db)
	transferRepo := repository.NewPresidencyTransferRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Teacher allow-list; sponsor claims are refused when the list fails to
	// load rather than letting anyone through
	teachers, err := teachercheck.Load(cfg.TeacherAllowlistPath)
	if err != nil {
		log.Printf("Warning: failed to load teacher allowlist: %v", err)
		teachers = teachercheck.NewVerifier(nil)
	}

	// Initialize services
	auditRecorder := service.NewAuditRecorder(auditRepo)
	roleService := service.NewRoleService(userRoleRepo, sponsorRepo, memberRepo, userRepo, cfg.CoordinatorEmailList())
	leadershipService := service.NewLeadershipService(
		txManager, clubRepo, memberRepo, sponsorRepo, userRepo, requestRepo, transferRepo,
		roleService, teachers, auditRecorder, validator,
	)
	clubService := service.NewClubService(clubRepo, memberRepo, roleService, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	clubHandler := handlers.NewClubHandler(clubService, leadershipService)
	sponsorHandler := handlers.NewSponsorHandler(leadershipService)
	adminHandler := handlers.NewAdminHandler(leadershipService)
	userHandler := handlers.NewUserHandler(roleService, teachers)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Club routes. Reads take optional auth so the viewer context can be
		// filled when a token is present.
		clubs := api.Group("/clubs")
		{
			clubs.GET("", authMiddleware.OptionalAuth(), clubHandler.ListClubs)
			clubs.GET("/:id", authMiddleware.OptionalAuth(), clubHandler.GetClub)

			// Leadership transitions name their actor in the request body,
			// falling back to the bearer token. Auth is optional here; a
			// request naming nobody is rejected by the handler with a 400.
			transitions := clubs.Group("")
			transitions.Use(authMiddleware.OptionalAuth())
			{
				transitions.POST("/:id/claim", clubHandler.ClaimClub)
				transitions.POST("/:id/transfer", clubHandler.TransferPresidency)
				transitions.POST("/:id/leave-presidency", clubHandler.LeavePresidency)
				transitions.PUT("/:id/members/:memberId/role", clubHandler.UpdateMemberRole)
				transitions.POST("/:id/claim-sponsor", sponsorHandler.ClaimSponsor)
				transitions.POST("/:id/leadership-requests", sponsorHandler.SubmitRequest)
			}

			authed := clubs.Group("")
			authed.Use(authMiddleware.RequireAuth())
			{
				authed.PUT("/:id", clubHandler.UpdateClub)
				authed.GET("/:id/check-sponsor", sponsorHandler.CheckSponsor)
				authed.POST("/:id/leave-sponsor", sponsorHandler.LeaveSponsor)
			}
		}

		// Sponsor review routes
		sponsor := api.Group("/sponsor")
		{
			sponsor.GET("/requests", authMiddleware.RequireAuth(), sponsorHandler.ListRequests)
			sponsor.POST("/requests/:requestId", authMiddleware.OptionalAuth(), sponsorHandler.ReviewRequest)
		}

		// Admin routes. Coordinator standing is enforced in the service
		// layer, so a non-coordinator still gets a 403.
		admin := api.Group("/admin")
		admin.Use(authMiddleware.OptionalAuth())
		{
			admin.POST("/clubs/:id/remove-president", adminHandler.RemovePresident)
			admin.POST("/clubs/:id/kick-member", adminHandler.KickMember)
		}

		// User routes
		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/check-teacher", userHandler.CheckTeacher)
			users.GET("/:id/roles", userHandler.GetUserRoles)
		}
	}

	return router
}
