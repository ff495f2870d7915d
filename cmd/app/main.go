package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasteleria/cmd"
	httpadapter "pasteleria/internal/adapters/in/http"
	"pasteleria/internal/adapters/out/postgres/orderrepo"
	"pasteleria/internal/adapters/out/postgres/productrepo"
	"pasteleria/internal/adapters/out/postgres/userrepo"
	"pasteleria/internal/jobs"
	"pasteleria/internal/pkg/token"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	issuer, err := token.NewIssuer(configs.JWTSecret, tokenTTL(configs))
	if err != nil {
		log.Fatalf("Invalid JWT configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetAllOrdersQueryHandler(), pendingAlertThreshold(configs), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, issuer, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
		TokenTTLMinutes:     goDotEnvVariable("TOKEN_TTL_MINUTES"),
		AdminStatusPolicy:   goDotEnvVariable("ADMIN_STATUS_POLICY"),
		PendingAlertMinutes: goDotEnvVariable("PENDING_ALERT_MINUTES"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func tokenTTL(config cmd.Config) time.Duration {
	return minutesOrDefault(config.TokenTTLMinutes, 60)
}

func pendingAlertThreshold(config cmd.Config) time.Duration {
	return minutesOrDefault(config.PendingAlertMinutes, 30)
}

func minutesOrDefault(value string, fallback int) time.Duration {
	if value == "" {
		return time.Duration(fallback) * time.Minute
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		log.Fatalf("Invalid minutes value %q", value)
	}
	return time.Duration(minutes) * time.Minute
}

func mustConnectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.AssignmentDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, issuer token.Issuer, port string) {
	handlers := httpadapter.Handlers{
		RegisterUser:      app.CreateRegisterUserCommandHandler(),
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		AssignDelivery:    app.CreateAssignDeliveryCommandHandler(),
		CreateProduct:     app.CreateCreateProductCommandHandler(),
		UpdateProduct:     app.CreateUpdateProductCommandHandler(),
		ToggleProduct:     app.CreateToggleProductAvailabilityCommandHandler(),
		DeleteProduct:     app.CreateDeleteProductCommandHandler(),

		AuthenticateUser:     app.CreateAuthenticateUserQueryHandler(),
		GetUser:              app.CreateGetUserQueryHandler(),
		GetUsers:             app.CreateGetUsersQueryHandler(),
		GetCustomerOrders:    app.CreateGetCustomerOrdersQueryHandler(),
		GetAllOrders:         app.CreateGetAllOrdersQueryHandler(),
		GetDeliveryOrders:    app.CreateGetDeliveryOrdersQueryHandler(),
		GetAssignedOrders:    app.CreateGetAssignedOrdersQueryHandler(),
		GetOrder:             app.CreateGetOrderQueryHandler(),
		GetProducts:          app.CreateGetProductsQueryHandler(),
		GetProduct:           app.CreateGetProductQueryHandler(),
		GetDeliveryPersonnel: app.CreateGetDeliveryPersonnelQueryHandler(),
	}

	e := echo.New()
	httpadapter.NewServer(handlers, issuer).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
