package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/playbox/box-booking-backend/internal/auth"
	"github.com/playbox/box-booking-backend/internal/booking"
	bookingHttp "github.com/playbox/box-booking-backend/internal/booking/http"
	"github.com/playbox/box-booking-backend/internal/court"
	courtHttp "github.com/playbox/box-booking-backend/internal/court/http"
	"github.com/playbox/box-booking-backend/internal/selection"
	selectionHttp "github.com/playbox/box-booking-backend/internal/selection/http"
	"github.com/playbox/box-booking-backend/internal/slot"
	slotHttp "github.com/playbox/box-booking-backend/internal/slot/http"
	"github.com/playbox/box-booking-backend/internal/user"
	userHttp "github.com/playbox/box-booking-backend/internal/user/http"
	"github.com/playbox/box-booking-backend/internal/venue"
	venueHttp "github.com/playbox/box-booking-backend/internal/venue/http"
)

// Config collects everything the router needs to assemble middleware and
// module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string // comma-separated allowed origins

	UserService      user.Service
	BoxService       venue.Service
	CourtService     court.Service
	SlotService      slot.Service
	SelectionService selection.Service
	BookingService   booking.Service
	JWTManager       *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (CORS, Logger,
// Auth) plus every module's routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger logs request information to the console; Recovery captures
	// panics and returns a 500 instead of crashing the server.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // local client / Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	boxHandler := venueHttp.NewHandler(cfg.BoxService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService)
	slotHandler := slotHttp.NewHandler(cfg.SlotService)
	selectionHandler := selectionHttp.NewHandler(cfg.SelectionService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		venueHttp.RegisterRoutes(v1, boxHandler)
		courtHttp.RegisterRoutes(v1, courtHandler)
		slotHttp.RegisterRoutes(v1, slotHandler)
		selectionHttp.RegisterRoutes(v1, selectionHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
