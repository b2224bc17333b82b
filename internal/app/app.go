package app

import (
	"fmt"

	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/db"
	"github.com/cinelog/cinelog/internal/repository"
	"github.com/cinelog/cinelog/internal/service"
	"github.com/jmoiron/sqlx"
)

// App holds the dependency graph. Everything is constructed once at process
// start and passed down explicitly; there are no ambient globals.
type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	UserService    *service.UserService
	CatalogService *service.CatalogService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	movieRepository := repository.NewMovieRepository(database)
	genreRepository := repository.NewGenreRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)
	catalogService := service.NewCatalogService(movieRepository, genreRepository)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		UserService:    userService,
		CatalogService: catalogService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
