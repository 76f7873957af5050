package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"leximax/config"
	"leximax/content"
	"leximax/db"
	"leximax/models"
	"leximax/services"

	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", config.Path(), "Path to config file")
	withUsers := flag.Bool("users", false, "Also create the demo leaderboard users")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.URI == "" {
		log.Fatal("database.uri (MONGO_URI) is required")
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.DisconnectMongoDB(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	upserted, err := db.UpsertModules(ctx, content.Default().Modules())
	if err != nil {
		log.Fatalf("Failed to seed modules: %v", err)
	}
	fmt.Printf("Modules seeded (%d written)\n", upserted)

	if !*withUsers {
		return
	}

	users := db.NewMongoUserStore(db.MongoDatabase)
	progression := services.NewProgressionService(users, content.Default(), nil)
	for _, u := range content.DemoUsers(time.Now()) {
		err := users.CreateUser(ctx, u)
		if errors.Is(err, models.ErrEmailInUse) {
			fmt.Printf("   %s already exists, skipping\n", u.Email)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create %s: %v", u.Email, err)
		}
		if _, err := progression.CheckForBadges(ctx, u.ID); err != nil {
			log.Fatalf("Failed to award badges to %s: %v", u.Email, err)
		}
		fmt.Printf("   %s (%s) created\n", u.Username, u.Email)
	}
}
