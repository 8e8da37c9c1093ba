package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"newsportal-backend/internal/config"
	"newsportal-backend/internal/domains/analytics"
	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/domains/preview"
	infraCache "newsportal-backend/internal/infrastructure/cache"
	"newsportal-backend/internal/infrastructure/database"
	"newsportal-backend/internal/infrastructure/storage"
	"newsportal-backend/pkg/cache"
	"newsportal-backend/pkg/jwt"

	analyticsHandler "newsportal-backend/internal/domains/analytics/handler"
	analyticsRepo "newsportal-backend/internal/domains/analytics/repository"
	analyticsService "newsportal-backend/internal/domains/analytics/service"
	articleHandler "newsportal-backend/internal/domains/article/handler"
	auditRepo "newsportal-backend/internal/domains/audit/repository"
	articleRepo "newsportal-backend/internal/domains/article/repository"
	articleService "newsportal-backend/internal/domains/article/service"
	bannerHandler "newsportal-backend/internal/domains/banner/handler"
	bannerRepo "newsportal-backend/internal/domains/banner/repository"
	bannerService "newsportal-backend/internal/domains/banner/service"
	categoryHandler "newsportal-backend/internal/domains/category/handler"
	categoryRepo "newsportal-backend/internal/domains/category/repository"
	categoryService "newsportal-backend/internal/domains/category/service"
	commentHandler "newsportal-backend/internal/domains/comment/handler"
	commentRepo "newsportal-backend/internal/domains/comment/repository"
	commentService "newsportal-backend/internal/domains/comment/service"
	mediaHandler "newsportal-backend/internal/domains/media/handler"
	mediaService "newsportal-backend/internal/domains/media/service"
	newsletterHandler "newsportal-backend/internal/domains/newsletter/handler"
	newsletterRepo "newsportal-backend/internal/domains/newsletter/repository"
	newsletterService "newsportal-backend/internal/domains/newsletter/service"
	podcastHandler "newsportal-backend/internal/domains/podcast/handler"
	podcastRepo "newsportal-backend/internal/domains/podcast/repository"
	podcastService "newsportal-backend/internal/domains/podcast/service"
	previewHandler "newsportal-backend/internal/domains/preview/handler"
	profileHandler "newsportal-backend/internal/domains/profile/handler"
	profileRepo "newsportal-backend/internal/domains/profile/repository"
	profileService "newsportal-backend/internal/domains/profile/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order:
// config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client
	Storage     *storage.MinIOStorage

	// Cross-cutting
	AuditRecorder       audit.Recorder
	EngagementPublisher analytics.Publisher

	// Repositories
	ArticleRepo    articleRepo.ArticleRepository
	PodcastRepo    podcastRepo.PodcastRepository
	CategoryRepo   categoryRepo.CategoryRepository
	CommentRepo    commentRepo.CommentRepository
	BannerRepo     bannerRepo.BannerRepository
	SubscriberRepo newsletterRepo.SubscriberRepository
	ProfileRepo    profileRepo.ProfileRepository
	AnalyticsRepo  analyticsRepo.AnalyticsRepository
	AccessLogRepo  auditRepo.AccessLogRepository

	// Services
	ArticleService    articleService.ServiceInterface
	PodcastService    podcastService.ServiceInterface
	CategoryService   categoryService.ServiceInterface
	CommentService    commentService.ServiceInterface
	BannerService     bannerService.ServiceInterface
	NewsletterService newsletterService.ServiceInterface
	AuthService       profileService.AuthServiceInterface
	UserAdminService  profileService.AdminServiceInterface
	AnalyticsService  analyticsService.ServiceInterface
	MediaService      mediaService.ServiceInterface

	// Handlers
	ArticleHandler      *articleHandler.ArticleHandler
	ContentMutation     *articleHandler.ContentMutationHandler
	PodcastHandler      *podcastHandler.PodcastHandler
	CategoryHandler     *categoryHandler.CategoryHandler
	CommentHandler      *commentHandler.CommentHandler
	BannerHandler       *bannerHandler.BannerHandler
	NewsletterHandler   *newsletterHandler.NewsletterHandler
	AuthHandler         *profileHandler.AuthHandler
	UserAdminHandler    *profileHandler.UserAdminHandler
	IdentityAdmin       *profileHandler.IdentityAdminHandler
	EngagementTracking  *analyticsHandler.EngagementTrackingHandler
	SharePreviewHandler *previewHandler.PreviewHandler
	MediaHandler        *mediaHandler.MediaHandler
}

// NewContainer builds the full dependency graph. Any failure aborts
// startup, except Redis, MinIO and the queue, which degrade gracefully.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Step 3: Redis cache (non-critical)
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("redis connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	// Step 4: JWT
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	// Step 5: Background queue client. Without it, audit entries and
	// engagement events are dropped instead of failing requests.
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := c.AsynqClient.Ping(); err != nil {
		log.Printf("asynq connection failed (non-critical): %v", err)
		c.AuditRecorder = audit.NopRecorder{}
		c.EngagementPublisher = analytics.NopPublisher{}
	} else {
		c.AuditRecorder = audit.NewAsynqRecorder(c.AsynqClient)
		c.EngagementPublisher = analytics.NewAsynqPublisher(c.AsynqClient)
	}

	// Step 6: Object storage (non-critical; media uploads disabled if
	// unavailable)
	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		log.Printf("minio connection failed (non-critical): %v", err)
	} else {
		c.Storage = store
	}

	// Step 7: Repositories
	c.initRepositories()

	// Step 8: Services
	c.initServices()

	// Step 9: Handlers
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ArticleRepo = articleRepo.NewPostgresArticleRepository(pool)
	c.PodcastRepo = podcastRepo.NewPostgresPodcastRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
	c.BannerRepo = bannerRepo.NewPostgresBannerRepository(pool)
	c.SubscriberRepo = newsletterRepo.NewPostgresSubscriberRepository(pool)
	c.ProfileRepo = profileRepo.NewPostgresProfileRepository(pool)
	c.AnalyticsRepo = analyticsRepo.NewPostgresAnalyticsRepository(pool)
	c.AccessLogRepo = auditRepo.NewPostgresAccessLogRepository(pool)
}

func (c *Container) initServices() {
	// The admin service doubles as the role lookup for every other
	// domain's permission checks.
	c.UserAdminService = profileService.NewAdminService(c.ProfileRepo, c.AccessLogRepo, c.AuditRecorder)

	c.AuthService = profileService.NewAuthService(c.ProfileRepo, c.JWTManager, c.AuditRecorder)

	c.ArticleService = articleService.NewArticleService(
		c.ArticleRepo,
		c.UserAdminService,
		c.AuditRecorder,
		c.Cache,
	)

	c.PodcastService = podcastService.NewPodcastService(
		c.PodcastRepo,
		c.UserAdminService,
		c.AuditRecorder,
	)

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.AuditRecorder)
	c.BannerService = bannerService.NewBannerService(c.BannerRepo)
	c.NewsletterService = newsletterService.NewNewsletterService(c.SubscriberRepo)

	c.AnalyticsService = analyticsService.NewAnalyticsService(
		c.AnalyticsRepo,
		c.EngagementPublisher,
		c.UserAdminService,
	)

	if c.Storage != nil {
		c.MediaService = mediaService.NewMediaService(c.Storage, storage.NewImageProcessor())
	}
}

func (c *Container) initHandlers() {
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.ContentMutation = articleHandler.NewContentMutationHandler(c.ArticleService)
	c.PodcastHandler = podcastHandler.NewPodcastHandler(c.PodcastService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.BannerHandler = bannerHandler.NewBannerHandler(c.BannerService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
	c.AuthHandler = profileHandler.NewAuthHandler(c.AuthService)
	c.UserAdminHandler = profileHandler.NewUserAdminHandler(c.UserAdminService)
	c.IdentityAdmin = profileHandler.NewIdentityAdminHandler(c.UserAdminService)
	c.EngagementTracking = analyticsHandler.NewEngagementTrackingHandler(c.AnalyticsService)

	c.SharePreviewHandler = previewHandler.NewPreviewHandler(
		c.ArticleService,
		preview.NewCrawlerDetector(c.Config.Preview.CrawlerSignatures),
		previewHandler.Config{
			SiteName:         c.Config.Preview.SiteName,
			TwitterHandle:    c.Config.Preview.TwitterHandle,
			FallbackImageURL: c.Config.Preview.FallbackImageURL,
			SiteURL:          c.Config.App.SiteURL,
		},
	)

	if c.MediaService != nil {
		c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	}
}

// Cleanup releases held connections. Called on graceful shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("failed to close asynq client: %v", err)
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("failed to close redis: %v", err)
			}
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
}
