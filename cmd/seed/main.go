// Command seed migrates the database schema and loads the demo master data
// without starting the web server. Running it against an already seeded
// database only re-runs the catalog reconciliation check.
package main

import (
	"context"
	"fmt"
	"os"

	"fulfillment/cmd"
	pgadapter "fulfillment/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = pgadapter.Migrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)
	loader, err := app.CreateMasterDataLoader()
	if err != nil {
		log.Fatalf("Error creating master data loader: %v", err)
	}

	if err = loader.Load(context.Background(), cmd.DemoDataset()); err != nil {
		log.Fatalf("Error loading master data: %v", err)
	}

	log.Info("Master data loaded")
}

func getConfigs() cmd.Config {
	return cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
