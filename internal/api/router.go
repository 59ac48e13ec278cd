package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/safariwheels/fleet-booking-backend/internal/category"
	catHttp "github.com/safariwheels/fleet-booking-backend/internal/category/http"
	"github.com/safariwheels/fleet-booking-backend/internal/reservation"
	resHttp "github.com/safariwheels/fleet-booking-backend/internal/reservation/http"
	"github.com/safariwheels/fleet-booking-backend/internal/vehicle"
	vehHttp "github.com/safariwheels/fleet-booking-backend/internal/vehicle/http"
)

// Config holds the services the router exposes over HTTP.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	CategoryService    category.Service
	VehicleService     vehicle.Service
	ReservationService reservation.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger) and registering
// routes for the fleet, category and reservation modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	categoryHandler := catHttp.NewHandler(cfg.CategoryService)
	vehicleHandler := vehHttp.NewHandler(cfg.VehicleService)
	reservationHandler := resHttp.NewHandler(cfg.ReservationService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		catHttp.RegisterRoutes(v1, categoryHandler)
		vehHttp.RegisterRoutes(v1, vehicleHandler)
		resHttp.RegisterRoutes(v1, reservationHandler)
	}

	return r
}
