package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safariwheels/fleet-booking-backend/internal/api"
	"github.com/safariwheels/fleet-booking-backend/internal/category"
	"github.com/safariwheels/fleet-booking-backend/internal/reservation"
	"github.com/safariwheels/fleet-booking-backend/internal/vehicle"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router             *gin.Engine
	ReservationService reservation.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Category Module
	catRepo := category.NewPgxRepository(cfg.DBPool)
	catService := category.NewService(catRepo)

	// Vehicle Module (schedule provider)
	vehRepo := vehicle.NewPgxRepository(cfg.DBPool)
	vehService := vehicle.NewService(vehRepo)

	// Reservation Module (sink + arbitration)
	resRepo := reservation.NewPgxRepository(cfg.DBPool)
	resService := reservation.NewService(resRepo, vehService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		CategoryService:    catService,
		VehicleService:     vehService,
		ReservationService: resService,
	})

	return &Container{
		Router:             router,
		ReservationService: resService,
	}
}
