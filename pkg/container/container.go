package container

import (
	"context"
	"fmt"

	"library-backend/internal/config"
	"library-backend/internal/domains/book"
	bookhandler "library-backend/internal/domains/book/handler"
	bookrepo "library-backend/internal/domains/book/repository"
	bookservice "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/rental"
	rentalhandler "library-backend/internal/domains/rental/handler"
	rentalrepo "library-backend/internal/domains/rental/repository"
	rentalservice "library-backend/internal/domains/rental/service"
	"library-backend/internal/domains/user"
	userhandler "library-backend/internal/domains/user/handler"
	userrepo "library-backend/internal/domains/user/repository"
	userservice "library-backend/internal/domains/user/service"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/logger"
)

// Container wires config, the store and the three managers together. Every
// manager is a stateless service holding only the shared pool handle;
// the container is built once at process start.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	UserService   user.Service
	BookService   book.Service
	RentalService rental.Service

	UserHandler   *userhandler.UserHandler
	BookHandler   *bookhandler.BookHandler
	RentalHandler *rentalhandler.RentalHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	userRepository := userrepo.NewPostgresRepository(db.Pool)
	bookRepository := bookrepo.NewPostgresRepository(db.Pool)
	rentalRepository := rentalrepo.NewPostgresRepository(db.Pool)

	userService := userservice.NewUserService(userRepository)
	bookService := bookservice.NewBookService(bookRepository)
	rentalService := rentalservice.NewRentalService(rentalRepository)

	return &Container{
		Config: cfg,
		DB:     db,

		UserService:   userService,
		BookService:   bookService,
		RentalService: rentalService,

		UserHandler:   userhandler.NewUserHandler(userService),
		BookHandler:   bookhandler.NewBookHandler(bookService),
		RentalHandler: rentalhandler.NewRentalHandler(rentalService),
	}, nil
}

// Cleanup releases everything the container owns. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
