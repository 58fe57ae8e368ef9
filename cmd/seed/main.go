// Command seed wipes the users collection and inserts the sample accounts.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"ordergate/internal/config"
	"ordergate/internal/database"
	"ordergate/internal/models"
	"ordergate/internal/store"
)

var sampleUsers = []models.User{
	{
		AdminName:   "John Doe",
		UserID:      "john123",
		PhoneNumber: "1234567890",
	},
	{
		AdminName:   "Admin User",
		UserID:      "admin001",
		PhoneNumber: "9998887777",
		Role:        "admin",
	},
}

func main() {
	log := logrus.New()

	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	users := store.NewMongo(client.Database(cfg.MongoDB))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("index setup error: %v", err)
	}

	if err := users.DeleteAll(ctx); err != nil {
		log.Fatalf("clearing users failed: %v", err)
	}
	log.Info("cleared existing users")

	now := time.Now()
	for _, u := range sampleUsers {
		u.IsActive = true
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := users.Create(ctx, &u); err != nil {
			log.Fatalf("creating user %s failed: %v", u.UserID, err)
		}
		log.WithFields(logrus.Fields{
			"adminName": u.AdminName,
			"userId":    u.UserID,
			"phone":     u.PhoneNumber,
			"role":      u.Role,
		}).Info("created user")
	}

	log.Info("sample users created")
}
