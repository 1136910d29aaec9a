package v1

import (
	"net/http"

	"go-ats-backend/config"
	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	UserUC             domain.UserUsecase
	CandidateUC        domain.CandidateUsecase
	VacancyUC          domain.VacancyUsecase
	CompanyUC          domain.CompanyUsecase
	CommentUC          domain.CommentUsecase
	BlacklistUC        domain.BlacklistUsecase
	CandidateFileUC    domain.CandidateFileUsecase
	PipelineStatusUC   domain.PipelineStatusUsecase
	CandidateVacancyUC domain.CandidateVacancyUsecase
	DashboardUC        domain.DashboardUsecase
	AreaUC             domain.LookupUsecase
	IndustryUC         domain.LookupUsecase
	SeniorityUC        domain.LookupUsecase
	CandidateSourceUC  domain.LookupUsecase
	VacancyStatusUC    domain.LookupUsecase
	Config             *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before everything else
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewVacancyHandler(protected, deps.VacancyUC)
		NewCompanyHandler(protected, deps.CompanyUC)
		NewCommentHandler(protected, deps.CommentUC)
		NewBlacklistHandler(protected, deps.BlacklistUC)
		NewCandidateFileHandler(protected, deps.CandidateFileUC)
		NewPipelineStatusHandler(protected, deps.PipelineStatusUC)
		NewCandidateVacancyHandler(protected, deps.CandidateVacancyUC)
		NewDashboardHandler(protected, deps.DashboardUC)

		NewLookupHandler(protected, "/areas", deps.AreaUC)
		NewLookupHandler(protected, "/industries", deps.IndustryUC)
		NewLookupHandler(protected, "/seniorities", deps.SeniorityUC)
		NewLookupHandler(protected, "/candidate-sources", deps.CandidateSourceUC)
		NewLookupHandler(protected, "/vacancy-statuses", deps.VacancyStatusUC)

		admin := protected.Group("")
		admin.Use(middleware.RequireRole(domain.RoleAdmin))
		{
			NewUserHandler(admin, deps.UserUC)
		}
	}

	return r
}
