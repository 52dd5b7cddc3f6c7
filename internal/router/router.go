package router

import (
	"time"

	"github.com/maesedev/dealership-project/internal/config"
	"github.com/maesedev/dealership-project/internal/handler"
	"github.com/maesedev/dealership-project/internal/middleware"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"
	"github.com/maesedev/dealership-project/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	bonoRepo := repository.NewBonoRepository(db)
	jackpotRepo := repository.NewJackpotPrizeRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	sessionSvc := service.NewSessionService(sessionRepo, userRepo)
	transactionSvc := service.NewTransactionService(transactionRepo, userRepo, sessionRepo)
	bonoSvc := service.NewBonoService(bonoRepo, userRepo, sessionRepo)
	jackpotSvc := service.NewJackpotPrizeService(jackpotRepo, userRepo, sessionRepo)
	reportSvc := service.NewReportService(reportRepo, sessionRepo, transactionRepo, bonoRepo, jackpotRepo, rdb, cfg.AppName)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	sessionsH := handler.NewSessionsHandler(sessionSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	bonosH := handler.NewBonosHandler(bonoSvc)
	jackpotsH := handler.NewJackpotsHandler(jackpotSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	jwtMW := middleware.JWTAuth(authSvc)

	// Auth
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", jwtMW, authH.Refresh)
		auth.GET("/me", jwtMW, authH.Me)
	}

	dealer := middleware.RequireTier(model.RoleDealer)
	manager := middleware.RequireTier(model.RoleManager)
	admin := middleware.RequireTier(model.RoleAdmin)

	v1 := r.Group("/api/v1", jwtMW)
	{
		users := v1.Group("/users")
		{
			users.POST("", dealer, usersH.Create)
			users.GET("", usersH.List)
			users.GET("/:id", usersH.GetByID)
			users.PUT("/:id", usersH.Update) // self-or-admin, enforced in handler
			users.PUT("/:id/roles", admin, usersH.UpdateRoles)
			users.POST("/:id/activate", admin, usersH.Activate)
			users.POST("/:id/deactivate", admin, usersH.Deactivate)
			users.GET("/stats/overview", manager, usersH.Stats)
			users.DELETE("/:id", admin, usersH.Delete)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", dealer, sessionsH.Open)
			sessions.GET("", sessionsH.List)
			sessions.GET("/active/list", sessionsH.ListActive)
			sessions.GET("/:id", sessionsH.GetByID)
			sessions.PUT("/:id", dealer, sessionsH.Update)
			sessions.POST("/:id/end", dealer, sessionsH.End)
			sessions.GET("/stats/overview", manager, sessionsH.Stats)
			sessions.DELETE("/:id", manager, sessionsH.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("", transactionsH.Create)
			transactions.GET("", transactionsH.List)
			transactions.GET("/:id", transactionsH.GetByID)
			transactions.GET("/session/:id", transactionsH.ListBySession)
			transactions.PUT("/:id", dealer, transactionsH.Update)
			transactions.DELETE("/:id", dealer, transactionsH.Delete)
		}

		bonos := v1.Group("/bonos")
		{
			bonos.POST("", dealer, bonosH.Create)
			bonos.GET("", bonosH.List)
			bonos.GET("/:id", bonosH.GetByID)
			bonos.GET("/session/:id", bonosH.ListBySession)
			bonos.PUT("/:id", dealer, bonosH.Update)
			bonos.DELETE("/:id", dealer, bonosH.Delete)
		}

		jackpots := v1.Group("/jackpots")
		{
			jackpots.POST("", dealer, jackpotsH.Create)
			jackpots.GET("", jackpotsH.List)
			jackpots.GET("/:id", jackpotsH.GetByID)
			jackpots.GET("/session/:id", jackpotsH.ListBySession)
			jackpots.PUT("/:id", dealer, jackpotsH.Update)
			jackpots.DELETE("/:id", dealer, jackpotsH.Delete)
		}

		reports := v1.Group("/reports", manager)
		{
			reports.GET("", reportsH.List)
			reports.GET("/date/:date", reportsH.GetByDate)
			reports.GET("/profitable/list", reportsH.ListProfitable)
			reports.GET("/stats/overview", reportsH.Stats)
			reports.GET("/:id", reportsH.GetByID)
			reports.GET("/:id/pdf", reportsH.PDF)
			reports.PUT("/:id", reportsH.Update)
			reports.DELETE("/:id", reportsH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
