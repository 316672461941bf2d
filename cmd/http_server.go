package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/auth"
	authPostgres "github.com/hrcore/hr-management/internal/auth/postgres"
	"github.com/hrcore/hr-management/internal/department"
	departmentPostgres "github.com/hrcore/hr-management/internal/department/postgres"
	"github.com/hrcore/hr-management/internal/designation"
	designationPostgres "github.com/hrcore/hr-management/internal/designation/postgres"
	"github.com/hrcore/hr-management/internal/headofunit"
	headofunitPostgres "github.com/hrcore/hr-management/internal/headofunit/postgres"
	"github.com/hrcore/hr-management/internal/location"
	locationPostgres "github.com/hrcore/hr-management/internal/location/postgres"
	"github.com/hrcore/hr-management/internal/notifier"
	"github.com/hrcore/hr-management/internal/transport"
	"github.com/hrcore/hr-management/internal/transport/rest"
	"github.com/hrcore/hr-management/internal/unit"
	unitPostgres "github.com/hrcore/hr-management/internal/unit/postgres"
	"github.com/hrcore/hr-management/internal/user"
	userPostgres "github.com/hrcore/hr-management/internal/user/postgres"
	"github.com/hrcore/hr-management/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Queue.RedisAddr,
		Password: config.Queue.RedisPassword,
		DB:       config.Queue.RedisDB,
	})

	eventNotifier := notifier.New(notifier.RoutesFromEnv(), notifier.NewRedisQueue(redisClient), lg)

	baseHandler := transport.NewBaseHandler(lg)

	departmentRepo := departmentPostgres.NewDepartmentRepository(gormDB)
	unitRepo := unitPostgres.NewUnitRepository(gormDB)
	designationRepo := designationPostgres.NewDesignationRepository(gormDB)
	locationRepo := locationPostgres.NewLocationRepository(gormDB)
	headOfUnitRepo := headofunitPostgres.NewHeadOfUnitRepository(gormDB)
	userRepo := userPostgres.NewUserRepository(gormDB)
	authRepo := authPostgres.NewAuthRepository(gormDB)

	departmentService := department.NewService(departmentRepo, eventNotifier, lg)
	unitService := unit.NewService(unitRepo, departmentRepo, eventNotifier, lg)
	designationService := designation.NewService(designationRepo, eventNotifier, lg)
	locationService := location.NewService(locationRepo, eventNotifier, lg)
	headOfUnitService := headofunit.NewService(headOfUnitRepo, userRepo, unitRepo, locationRepo, eventNotifier, lg)
	userService := user.NewService(userRepo, eventNotifier, config.Security.BCryptCost, lg)

	tokenGenerator := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authRepo, tokenGenerator, lg)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(baseHandler, authService),
		User:        user.NewHandler(baseHandler, userService),
		Department:  department.NewHandler(baseHandler, departmentService),
		Unit:        unit.NewHandler(baseHandler, unitService),
		Designation: designation.NewHandler(baseHandler, designationService),
		Location:    location.NewHandler(baseHandler, locationService),
		HeadOfUnit:  headofunit.NewHandler(baseHandler, headOfUnitService),
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, handlers, lg)

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: router,
		Logger: lg,
	}, nil
}

// initDB opens the pgx-backed connection pool shared by gorm and the
// health checks.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
