package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"coworking/internal/database"
	"coworking/internal/middleware"
	"coworking/internal/modules/availability"
	"coworking/internal/modules/booking"
	"coworking/internal/modules/catalog"
	"coworking/internal/pkg/logger"
	"coworking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	zlog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(dsn)
	if err != nil {
		zlog.Fatal("db connect failed", zap.Error(err))
	}

	spaceRepo := repository.NewSpaceRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	availabilityService := availability.NewService(bookingRepo, spaceRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	catalogService := catalog.NewService(spaceRepo, serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(customerRepo, bookingRepo, invoiceRepo, availabilityService, zlog)
	bookingHandler := booking.NewHandler(bookingService, spaceRepo, serviceRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(zlog))

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
