package main

import (
	"context"
	"flag"
	"os"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/seed"
)

func main() {
	path := flag.String("file", "cmd/seed/catalog.yaml", "YAML catalog to load")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("config load failed", "error", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "seed"})

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("auto migrate failed", "error", err)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal("open catalog failed", "path", *path, "error", err)
	}
	defer f.Close()

	cat, err := seed.Load(f)
	if err != nil {
		log.Fatal("load catalog failed", "path", *path, "error", err)
	}

	seeder := seed.NewSeeder(
		repository.NewHotelRepository(db),
		repository.NewRoomRepository(db),
		repository.NewAttractionRepository(db),
		log,
	)
	st, err := seeder.Run(context.Background(), cat)
	if err != nil {
		log.Fatal("seed failed", "error", err, "hotels", st.Hotels, "rooms", st.Rooms)
	}

	log.Info("seed completed", "hotels", st.Hotels, "rooms", st.Rooms, "attractions", st.Attractions)
}
