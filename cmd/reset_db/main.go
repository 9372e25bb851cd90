package main

import (
	"context"
	"fmt"

	"roadfine/config"
	"roadfine/pkg/logger"
	"roadfine/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	pg, err := postgres.New(context.Background(), cfg, log)

	if err != nil {
		panic(err)
	}
	defer pg.Close()

	// Truncate mutable tables only. police_division rows stay: divisions are
	// long-lived reference data, everything else hangs off drivers.
	_, err = pg.GetPool().Exec(context.Background(),
		"TRUNCATE TABLE driver, driver_vehicles, fines, payments, notifications CASCADE")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to truncate tables: %v", err))
	} else {
		log.Info("Successfully truncated driver, fine, payment, and notification tables.")
	}
}
