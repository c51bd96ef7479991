package main

import (
	"context"
	"fmt"

	mongodb "github.com/postosaude/clinic-api/internal/infrastructure/db/mongo"
	"github.com/postosaude/clinic-api/internal/pkg/config"
	"github.com/postosaude/clinic-api/internal/seed"
	"github.com/postosaude/clinic-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "clinic-seed",
		Env:     cfg.Env,
	})

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer client.Disconnect(ctx)

	if err := mongodb.Reset(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("clearing collections failed")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	summary, err := seed.Run(ctx, seed.Repositories{
		Users:       mongodb.NewUserRepository(db),
		Doctors:     mongodb.NewDoctorRepository(db),
		Facilities:  mongodb.NewFacilityRepository(db),
		Medications: mongodb.NewMedicationRepository(db),
	}, seed.Options{BcryptCost: cfg.Auth.BcryptCost}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().
		Int("users", summary.Users).
		Int("doctors", summary.Doctors).
		Int("facilities", summary.Facilities).
		Int("medications", summary.Medications).
		Msg("seed complete")
	fmt.Printf("Credenciais de teste (senha %s): maria@email.com, carlos@email.com, admin@email.com\n", seed.DefaultPassword)
}
