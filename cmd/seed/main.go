package main

import (
	"context"
	"log"

	"galleria/internal/config"
	"galleria/internal/db"
	"galleria/internal/model"
	"galleria/internal/repository"
	"galleria/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Artist{},
		&model.Picture{},
		&model.Exhibition{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seeder := seed.New(
		repository.NewUserRepository(gormDB),
		repository.NewArtistRepository(gormDB),
		repository.NewPictureRepository(gormDB),
		cfg.AdminUsername,
		cfg.AdminPassword,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	log.Println("Seed completed successfully!")
}
