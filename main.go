package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"github.com/myusernamejeep/dineflow-backend/config"
	"github.com/myusernamejeep/dineflow-backend/internal/consumer"
	"github.com/myusernamejeep/dineflow-backend/internal/handler"
	"github.com/myusernamejeep/dineflow-backend/internal/middleware"
	"github.com/myusernamejeep/dineflow-backend/internal/notification"
	"github.com/myusernamejeep/dineflow-backend/internal/repository"
	"github.com/myusernamejeep/dineflow-backend/internal/service"
	"github.com/myusernamejeep/dineflow-backend/pkg/database"
	"github.com/myusernamejeep/dineflow-backend/pkg/mailer"
	"github.com/myusernamejeep/dineflow-backend/pkg/rabbitmq"
	"github.com/myusernamejeep/dineflow-backend/pkg/stripe"
	"github.com/myusernamejeep/dineflow-backend/pkg/twilio"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ: payment flow publishes booking.confirmed, the in-process
	// notification worker consumes it.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	smsClient := twilio.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	mailClient := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailFrom)

	worker := consumer.NewNotificationWorker(smsClient, mailClient, cfg.AdminEmail)
	worker.Start(msgs)

	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	restaurantSvc := service.NewRestaurantService(restaurantRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, restaurantRepo)
	notifier := notification.NewNotifier(publisher)
	paymentSvc := service.NewPaymentService(bookingRepo, stripe.New(cfg.StripeSecretKey), notifier, cfg.Currency)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
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
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "dineflow-backend"})
	})

	handler.NewRestaurantHandler(restaurantSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(e)
	handler.NewAdminHandler(restaurantSvc, bookingSvc).RegisterRoutes(e)

	log.Printf("DineFlow backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
