package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/oakfield/realty/docs" // Import generated swagger docs
	appControllers "github.com/oakfield/realty/internal/app/controllers"
	appMigrations "github.com/oakfield/realty/internal/app/migrations"
	appRepos "github.com/oakfield/realty/internal/app/repositories"
	appRoutes "github.com/oakfield/realty/internal/app/routes"
	appServices "github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/config"
	"github.com/oakfield/realty/internal/db"
	appMiddleware "github.com/oakfield/realty/internal/middleware"
	pkgAuth "github.com/oakfield/realty/internal/pkg/auth"
	"github.com/oakfield/realty/internal/pkg/logger"
	"github.com/oakfield/realty/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	PropertyService       appServices.PropertyService
	ClientService         appServices.ClientService
	MessageService        appServices.MessageService
	AppointmentService    appServices.AppointmentService
	ActivityService       appServices.ActivityService
	DashboardService      appServices.DashboardService
	ThemeService          appServices.ThemeService
	ContentService        appServices.ContentService
	CommunityService      appServices.CommunityService
	AuthController        *appControllers.AuthController
	PropertyController    *appControllers.PropertyController
	ClientController      *appControllers.ClientController
	MessageController     *appControllers.MessageController
	AppointmentController *appControllers.AppointmentController
	ActivityController    *appControllers.ActivityController
	DashboardController   *appControllers.DashboardController
	ThemeController       *appControllers.ThemeController
	ContentController     *appControllers.ContentController
	CommunityController   *appControllers.CommunityController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := cfg.Seed.MigrationDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Seed.Username, cfg.Seed.Password, lgr); err != nil {
			// Seed failures are not fatal; the API works without demo data.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: parseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Initialize services
	deps.ActivityService = appServices.NewActivityService(deps.Repos.ActivityRepository, lgr)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.PropertyService = appServices.NewPropertyService(deps.Repos.PropertyRepository, deps.ActivityService)
	deps.ClientService = appServices.NewClientService(deps.Repos.ClientRepository, deps.ActivityService)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.UserRepository, deps.ActivityService)
	deps.AppointmentService = appServices.NewAppointmentService(deps.Repos.AppointmentRepository, deps.ActivityService)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.PropertyRepository,
		deps.Repos.ClientRepository,
		deps.ActivityService,
		deps.AppointmentService,
	)
	deps.ThemeService = appServices.NewThemeService(deps.Repos.ThemeRepository, deps.Repos.WebsiteThemeRepository)
	deps.ContentService = appServices.NewContentService(deps.Repos.ContentRepository)
	deps.CommunityService = appServices.NewCommunityService(deps.Repos.CommunityRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.PropertyController = appControllers.NewPropertyController(deps.PropertyService)
	deps.ClientController = appControllers.NewClientController(deps.ClientService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)
	deps.AppointmentController = appControllers.NewAppointmentController(deps.AppointmentService)
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.ThemeController = appControllers.NewThemeController(deps.ThemeService)
	deps.ContentController = appControllers.NewContentController(deps.ContentService)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PropertyController,
		deps.ClientController,
		deps.MessageController,
		deps.AppointmentController,
		deps.ActivityController,
		deps.DashboardController,
		deps.ThemeController,
		deps.ContentController,
		deps.CommunityController,
		deps.AuthMiddleware,
	)

	return router
}

// parseDuration parses a duration string, falling back when it is
// empty or malformed.
func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Str("value", value).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}
