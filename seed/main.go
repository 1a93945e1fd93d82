// seed/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/seed/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, domains, topics, challenges")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := gorm.Open(postgres.Open(databaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Domain{},
		&model.Topic{},
		&model.Quest{},
		&model.Challenge{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		err = mainSeeder.SeedAll()
	case "domains":
		log.Println("Seeding domains only...")
		err = mainSeeder.SeedDomainsOnly()
	case "topics":
		log.Println("Seeding topics only...")
		err = mainSeeder.SeedTopicsOnly()
	case "challenges":
		log.Println("Seeding challenges and quests only...")
		err = mainSeeder.SeedChallengesOnly()
	default:
		log.Fatalf("Unknown seed type: %s", *seedType)
	}

	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully")
}

func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := envDefault("DB_HOST", "localhost")
	port := envDefault("DB_PORT", "5432")
	user := envDefault("DB_USER", "postgres")
	password := envDefault("DB_PASSWORD", "postgres")
	dbname := envDefault("DB_NAME", "ascend_api")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func showHelp() {
	fmt.Println("Ascend database seeder")
	fmt.Println()
	fmt.Println("Usage: seed [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
