package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"backoffice/cmd"
	httpserver "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/sellerrepo"
	"backoffice/internal/adapters/out/postgres/withdrawalrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleWithdrawalMaxAgeHours = 48

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := root.CreateJobManager(staleWithdrawalMaxAge(configs))
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		StaleWithdrawalMaxAgeHours: goDotEnvVariable("STALE_WITHDRAWAL_MAX_AGE_HOURS"),
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

func staleWithdrawalMaxAge(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.StaleWithdrawalMaxAgeHours)
	if err != nil || hours <= 0 {
		hours = defaultStaleWithdrawalMaxAgeHours
	}
	return time.Duration(hours) * time.Hour
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.RefundDTO{},
		&orderrepo.FlagDTO{},
		&sellerrepo.AccountDTO{},
		&sellerrepo.EntryDTO{},
		&withdrawalrepo.RequestDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(
		root.CreateValidateOrderCommandHandler(),
		root.CreateShipOrderCommandHandler(),
		root.CreateDeliverOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateRefundOrderCommandHandler(),
		root.CreateFlagOrderCommandHandler(),
		root.CreateUnfreezeSellerCommandHandler(),
		root.CreateMarkSettlementPaidCommandHandler(),
		root.CreateCreateWithdrawalCommandHandler(),
		root.CreateDecideWithdrawalCommandHandler(),
		root.CreateMarkWithdrawalProcessedCommandHandler(),
		root.CreateGetSellerBalanceQueryHandler(),
		root.CreateGetPendingWithdrawalsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
