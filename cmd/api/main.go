package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"ordergate/internal/config"
	"ordergate/internal/database"
	"ordergate/internal/server"
	"ordergate/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	users := store.NewMongo(client.Database(cfg.MongoDB))
	if err := users.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("index setup error: %v", err)
	}

	srv := server.NewServer(":"+cfg.Port, users, cfg, log)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
