package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ats-backend/config"
	_ "go-ats-backend/docs" // Important for Swagger
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           ATS Backend API
// @version         1.0
// @description     Applicant tracking backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting ATS backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	commentRepo := postgres.NewCommentRepository(dbPool)
	blacklistRepo := postgres.NewBlacklistRepository(dbPool)
	candidateFileRepo := postgres.NewCandidateFileRepository(dbPool)
	pipelineStatusRepo := postgres.NewPipelineStatusRepository(dbPool)
	candidateVacancyRepo := postgres.NewCandidateVacancyRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)
	areaRepo := postgres.NewLookupRepository(dbPool, domain.LookupArea)
	industryRepo := postgres.NewLookupRepository(dbPool, domain.LookupIndustry)
	seniorityRepo := postgres.NewLookupRepository(dbPool, domain.LookupSeniority)
	candidateSourceRepo := postgres.NewLookupRepository(dbPool, domain.LookupCandidateSource)
	vacancyStatusRepo := postgres.NewLookupRepository(dbPool, domain.LookupVacancyStatus)

	// UseCases
	validate := validator.New()
	jwtExpiry := time.Duration(cfg.JWTExpiryHours) * time.Hour
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, jwtExpiry)
	userUC := usecase.NewUserUsecase(userRepo, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, blacklistRepo, validate)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, validate)
	companyUC := usecase.NewCompanyUsecase(companyRepo, validate)
	commentUC := usecase.NewCommentUsecase(commentRepo)
	blacklistUC := usecase.NewBlacklistUsecase(blacklistRepo, candidateRepo)
	candidateFileUC := usecase.NewCandidateFileUsecase(candidateFileRepo)
	pipelineStatusUC := usecase.NewPipelineStatusUsecase(pipelineStatusRepo)
	candidateVacancyUC := usecase.NewCandidateVacancyUsecase(candidateVacancyRepo)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		UserUC:             userUC,
		CandidateUC:        candidateUC,
		VacancyUC:          vacancyUC,
		CompanyUC:          companyUC,
		CommentUC:          commentUC,
		BlacklistUC:        blacklistUC,
		CandidateFileUC:    candidateFileUC,
		PipelineStatusUC:   pipelineStatusUC,
		CandidateVacancyUC: candidateVacancyUC,
		DashboardUC:        dashboardUC,
		AreaUC:             usecase.NewLookupUsecase(areaRepo),
		IndustryUC:         usecase.NewLookupUsecase(industryRepo),
		SeniorityUC:        usecase.NewLookupUsecase(seniorityRepo),
		CandidateSourceUC:  usecase.NewLookupUsecase(candidateSourceRepo),
		VacancyStatusUC:    usecase.NewLookupUsecase(vacancyStatusRepo),
		Config:             cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
