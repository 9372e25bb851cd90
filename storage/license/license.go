package license

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/config"
	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

// Registry reads the external license database. The schema belongs to the
// licensing authority, so no migrations run against this pool.
type Registry struct {
	pool *pgxpool.Pool
	log  logger.ILogger
}

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.ILicenseRegistry, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.LicenseDBUser,
		cfg.LicenseDBPassword,
		cfg.LicenseDBHost,
		cfg.LicenseDBPort,
		cfg.LicenseDBName,
	)

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing license registry config", logger.Error(err))
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("failed to connect license registry", logger.Error(err))
		return nil, err
	}

	log.Info("License registry connected")

	return &Registry{pool: pool, log: log}, nil
}

func (r *Registry) Close() {
	r.pool.Close()
}

func (r *Registry) GetRecord(ctx context.Context, licenseNumber, nic string) (*models.LicenseRecord, error) {
	var rec models.LicenseRecord
	query := `
		SELECT license_number, nic, surname, first_name,
			COALESCE(middle_name, ''), COALESCE(last_name, ''),
			date_of_birth, date_of_issue, date_of_expiry,
			COALESCE(permanent_address, ''), COALESCE(email, ''),
			COALESCE(mobile_number, ''), COALESCE(profile_picture, '')
		FROM information
		WHERE license_number = $1 AND nic = $2
	`
	err := r.pool.QueryRow(ctx, query, licenseNumber, nic).Scan(
		&rec.LicenseNumber, &rec.NIC, &rec.Surname, &rec.FirstName,
		&rec.MiddleName, &rec.LastName,
		&rec.DateOfBirth, &rec.DateOfIssue, &rec.DateOfExpiry,
		&rec.Address, &rec.Email, &rec.MobileNumber, &rec.ProfilePicture,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to read license record", logger.Error(err))
		return nil, err
	}
	return &rec, nil
}

func (r *Registry) GetVehicles(ctx context.Context, licenseNumber string) ([]*models.VehicleRecord, error) {
	query := `
		SELECT license_number, COALESCE(vehicle_category, ''), date_of_issue, date_of_expiry
		FROM vehicles_information
		WHERE license_number = $1
	`
	rows, err := r.pool.Query(ctx, query, licenseNumber)
	if err != nil {
		r.log.Error("failed to read vehicle records", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.VehicleRecord
	for rows.Next() {
		var v models.VehicleRecord
		if err := rows.Scan(&v.LicenseNumber, &v.Category, &v.DateOfIssue, &v.DateOfExpiry); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}
