package provider

import (
	"github.com/folio-next/internal/cache"
	"github.com/folio-next/internal/config"
	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/models"
	"github.com/folio-next/internal/queue"
	"github.com/folio-next/internal/repository"
	"github.com/folio-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	AdminLoginLogRepo  repository.AdminLoginLogRepository
	ProjectRepo        repository.ProjectRepository
	ArtPieceRepo       repository.ArtPieceRepository
	EducationRepo      repository.EducationRepository
	ExperienceRepo     repository.ExperienceRepository
	TechStackRepo      repository.TechStackRepository
	ContactMessageRepo repository.ContactMessageRepository

	// Services
	AuthService          *service.AuthService
	PasswordResetService *service.PasswordResetService
	LoginLimiter         *service.LoginLimiter
	EmailService         *service.EmailService
	CaptchaService       *service.CaptchaService
	ProjectService       *service.ProjectService
	ArtPieceService      *service.ArtPieceService
	EducationService     *service.EducationService
	ExperienceService    *service.ExperienceService
	TechStackService     *service.TechStackService
	ContactService       *service.ContactService
	LoginLogService      *service.LoginLogService
	OverviewService      *service.OverviewService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.AdminLoginLogRepo = repository.NewAdminLoginLogRepository(db)
	c.ProjectRepo = repository.NewProjectRepository(db)
	c.ArtPieceRepo = repository.NewArtPieceRepository(db)
	c.EducationRepo = repository.NewEducationRepository(db)
	c.ExperienceRepo = repository.NewExperienceRepository(db)
	c.TechStackRepo = repository.NewTechStackRepository(db)
	c.ContactMessageRepo = repository.NewContactMessageRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.PasswordResetService = service.NewPasswordResetService(c.Config, c.AdminRepo, c.EmailService)
	c.LoginLimiter = service.NewLoginLimiter(c.Config.Security.LoginBackoff)
	c.LoginLogService = service.NewLoginLogService(c.AdminLoginLogRepo)

	c.ProjectService = service.NewProjectService(c.ProjectRepo)
	c.ArtPieceService = service.NewArtPieceService(c.ArtPieceRepo)
	c.EducationService = service.NewEducationService(c.EducationRepo)
	c.ExperienceService = service.NewExperienceService(c.ExperienceRepo)
	c.TechStackService = service.NewTechStackService(c.TechStackRepo)
	c.ContactService = service.NewContactService(c.ContactMessageRepo, c.QueueClient)
	c.OverviewService = service.NewOverviewService(
		c.ProjectRepo,
		c.ArtPieceRepo,
		c.TechStackRepo,
		c.ContactMessageRepo,
	)
}
