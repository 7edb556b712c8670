package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/playbox/box-booking-backend/internal/api"
	"github.com/playbox/box-booking-backend/internal/auth"
	"github.com/playbox/box-booking-backend/internal/booking"
	"github.com/playbox/box-booking-backend/internal/court"
	"github.com/playbox/box-booking-backend/internal/selection"
	"github.com/playbox/box-booking-backend/internal/slot"
	"github.com/playbox/box-booking-backend/internal/user"
	"github.com/playbox/box-booking-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Redis        *redis.Client
	FeedCacheTTL time.Duration
	SelectionTTL time.Duration
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Box module
	boxRepo := venue.NewPgxRepository(cfg.DBPool)
	boxService := venue.NewService(boxRepo)

	// Court module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, boxService)

	// Slot module. The booking repository doubles as the booked-slot source
	// for the feed, so it is built first.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	slotRepo := slot.NewPgxRepository(cfg.DBPool)
	feedCache := slot.NewFeedCache(cfg.Redis, cfg.FeedCacheTTL)
	slotService := slot.NewService(slotRepo, courtService, bookingRepo, feedCache)

	// Selection module
	selectionStore := selection.NewStore(cfg.Redis, cfg.SelectionTTL)
	selectionService := selection.NewService(selectionStore, slotService, courtService)

	// Booking module
	bookingService := booking.NewService(bookingRepo, boxService, courtService, slotService, selectionStore)

	routerParams := api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		UserService:      userService,
		BoxService:       boxService,
		CourtService:     courtService,
		SlotService:      slotService,
		SelectionService: selectionService,
		BookingService:   bookingService,
		JWTManager:       jwtManager,
	}

	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
