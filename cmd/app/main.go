package main

import (
	"fmt"
	"net/http"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/http/auth"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/jobs"
	"storefront/internal/pkg/logger"
	"storefront/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Optional: environment variables take precedence over .env.
	_ = godotenv.Load(".env")

	configs, err := cmd.InitConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err = logger.Initialize(configs.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	db, err := openDatabase(configs)
	if err != nil {
		zap.L().Fatal("error while connecting to database", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(app.CreateGetOrderStatsQueryHandler())
	if err = jobManager.StartAll(); err != nil {
		zap.L().Fatal("error while starting jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	tokens, err := auth.NewTokenManager(configs.JWTSecret, configs.JWTTokenTTL)
	if err != nil {
		zap.L().Fatal("error while creating token manager", zap.Error(err))
	}

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateRemoveProductCommandHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
	)

	e := echo.New()
	e.Use(metrics.NewServerMetrics("storefront").Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api/v1", auth.Middleware(tokens))
	server.RegisterRoutes(api)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
