package main

import (
	"log"

	"github.com/BLACKCODE1234/Hotel-System-sub000/config"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/handler"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/middleware"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/repository"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/service"
	"github.com/BLACKCODE1234/Hotel-System-sub000/pkg/database"
	"github.com/BLACKCODE1234/Hotel-System-sub000/pkg/rabbitmq"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Notification collaborator; transitions are published, never sent
	// directly. The service runs without it if RabbitMQ is down.
	var notifier service.Notifier
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, notifications disabled: %v", err)
	} else {
		defer publisher.Close()
		notifier = publisher
	}

	// Repositories
	reservationRepo := repository.NewReservationRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Services
	engine := pricing.NewEngine(pricing.DefaultConfig())
	quoteSvc := service.NewQuoteService(catalogRepo, engine)
	reservationSvc := service.NewReservationService(reservationRepo, roomRepo, catalogRepo, engine, notifier)
	roomSvc := service.NewRoomService(roomRepo, db, notifier)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewReservationHandler(quoteSvc, reservationSvc).RegisterRoutes(e)
	handler.NewRoomHandler(roomSvc).RegisterRoutes(e)
	handler.NewCatalogHandler(catalogRepo).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
