package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	analyticsapp "github.com/recruitflow/backend/internal/application/analytics"
	matchingapp "github.com/recruitflow/backend/internal/application/matching"
	recruitingapp "github.com/recruitflow/backend/internal/application/recruiting"
	settingsapp "github.com/recruitflow/backend/internal/application/settings"
	"github.com/recruitflow/backend/internal/infrastructure/config"
	"github.com/recruitflow/backend/internal/infrastructure/logger"
	"github.com/recruitflow/backend/internal/infrastructure/persistence"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"github.com/recruitflow/backend/internal/interfaces/http/handler"
	"github.com/recruitflow/backend/internal/interfaces/http/middleware"
	"github.com/recruitflow/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			RecruitFlow Backend API
//	@version		1.0
//	@description	Recruiting agency backend: applicant pipeline, KPI funnel and matching

//	@contact.name	API Support
//	@contact.url	https://github.com/recruitflow/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting RecruitFlow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// sqlite deployments carry no migration history, so build the schema in place
	if cfg.Database.Driver == "sqlite" {
		if err := db.AutoMigrate(
			&models.EmployeeModel{},
			&models.ApplicantModel{},
			&models.JobModel{},
			&models.InterviewModel{},
			&models.PhoneCallModel{},
			&models.QuarterlyTargetModel{},
		); err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}
		log.Info("Schema migrated")
	}

	// Initialize repositories
	applicantRepo := persistence.NewGormApplicantRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	jobRepo := persistence.NewGormJobRepository(db.DB)
	interviewRepo := persistence.NewGormInterviewRepository(db.DB)
	phoneCallRepo := persistence.NewGormPhoneCallRepository(db.DB)
	targetRepo := persistence.NewGormTargetRepository(db.DB)

	// Initialize application services
	applicantService := recruitingapp.NewApplicantService(applicantRepo, employeeRepo)
	employeeService := recruitingapp.NewEmployeeService(employeeRepo)
	jobService := recruitingapp.NewJobService(jobRepo)
	interviewService := recruitingapp.NewInterviewService(interviewRepo, applicantRepo, jobRepo)
	phoneCallService := recruitingapp.NewPhoneCallService(phoneCallRepo, applicantRepo, employeeRepo)
	kpiService := analyticsapp.NewKPIService(applicantRepo, employeeRepo, phoneCallRepo, targetRepo)
	matchingService := matchingapp.NewMatchingService(applicantRepo, jobRepo)
	settingsService := settingsapp.NewService(cfg.Settings.FilePath)

	// Initialize handlers
	applicantHandler := handler.NewApplicantHandler(applicantService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, kpiService)
	jobHandler := handler.NewJobHandler(jobService)
	interviewHandler := handler.NewInterviewHandler(interviewService)
	phoneCallHandler := handler.NewPhoneCallHandler(phoneCallService)
	companyHandler := handler.NewCompanyHandler(kpiService)
	matchingHandler := handler.NewMatchingHandler(matchingService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Recruiting domain (applicants, jobs, employees, interviews, phone calls)
	recruitingRoutes := router.NewDomainGroup("recruiting", "")
	recruitingRoutes.GET("/applicants", applicantHandler.List)
	recruitingRoutes.POST("/applicants", applicantHandler.Create)
	recruitingRoutes.GET("/applicants/:id", applicantHandler.GetByID)
	recruitingRoutes.PUT("/applicants/:id", applicantHandler.Update)
	recruitingRoutes.DELETE("/applicants/:id", applicantHandler.Delete)
	recruitingRoutes.PUT("/applicants/:id/progress", applicantHandler.UpdateProgress)
	recruitingRoutes.PUT("/applicants/:id/referral-fee", applicantHandler.UpdateReferralFee)
	recruitingRoutes.PUT("/applicants/:id/assign-employee", applicantHandler.AssignEmployee)

	recruitingRoutes.GET("/jobs", jobHandler.List)
	recruitingRoutes.POST("/jobs", jobHandler.Create)
	recruitingRoutes.GET("/jobs/:id", jobHandler.GetByID)
	recruitingRoutes.PUT("/jobs/:id", jobHandler.Update)
	recruitingRoutes.DELETE("/jobs/:id", jobHandler.Delete)

	recruitingRoutes.GET("/employees", employeeHandler.List)
	recruitingRoutes.POST("/employees", employeeHandler.Create)
	recruitingRoutes.GET("/employees/:id", employeeHandler.GetByID)
	recruitingRoutes.PUT("/employees/:id", employeeHandler.Update)
	recruitingRoutes.DELETE("/employees/:id", employeeHandler.Delete)
	recruitingRoutes.GET("/employees/:id/kpi", employeeHandler.GetKPI)

	recruitingRoutes.GET("/interviews", interviewHandler.List)
	recruitingRoutes.POST("/interviews", interviewHandler.Create)
	recruitingRoutes.GET("/interviews/statistics", interviewHandler.Statistics)
	recruitingRoutes.GET("/interviews/:id", interviewHandler.GetByID)
	recruitingRoutes.PUT("/interviews/:id", interviewHandler.Update)
	recruitingRoutes.DELETE("/interviews/:id", interviewHandler.Delete)

	recruitingRoutes.GET("/phone-calls", phoneCallHandler.List)
	recruitingRoutes.POST("/phone-calls", phoneCallHandler.Create)
	recruitingRoutes.GET("/phone-calls/:id", phoneCallHandler.GetByID)
	recruitingRoutes.PUT("/phone-calls/:id", phoneCallHandler.Update)
	recruitingRoutes.DELETE("/phone-calls/:id", phoneCallHandler.Delete)

	// Analytics domain (company KPI and rankings)
	companyRoutes := router.NewDomainGroup("company", "/company")
	companyRoutes.GET("/kpi", companyHandler.GetKPI)
	companyRoutes.GET("/top-performers", companyHandler.GetTopPerformers)

	// Matching domain
	matchingRoutes := router.NewDomainGroup("matching", "/matching")
	matchingRoutes.GET("/applicant/:id", matchingHandler.JobsForApplicant)
	matchingRoutes.GET("/job/:id", matchingHandler.ApplicantsForJob)

	// Settings
	settingsRoutes := router.NewDomainGroup("settings", "/settings")
	settingsRoutes.GET("", settingsHandler.Get)
	settingsRoutes.PUT("", settingsHandler.Update)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	// Register all domain groups
	r.Register(recruitingRoutes).
		Register(companyRoutes).
		Register(matchingRoutes).
		Register(settingsRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
