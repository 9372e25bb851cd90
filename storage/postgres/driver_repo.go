package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

type driverRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDriverRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{db: db, log: log}
}

const driverColumns = `driver_id, license_number, nic_number, division_id, surname, firstname,
	middle_name, last_name, date_of_birth, date_of_issue, date_of_expiry,
	address, email, mobile_number, username, password, qr_code, profile_picture, fcm_token, created_at`

func (r *driverRepo) Create(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	query := `
		INSERT INTO driver (license_number, nic_number, division_id, surname, firstname,
			middle_name, last_name, date_of_birth, date_of_issue, date_of_expiry,
			address, email, mobile_number, username, password, qr_code, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING driver_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		d.LicenseNumber, d.NICNumber, d.DivisionID, d.Surname, d.Firstname,
		d.MiddleName, d.LastName, d.DateOfBirth, d.DateOfIssue, d.DateOfExpiry,
		d.Address, d.Email, d.MobileNumber, d.Username, d.Password, d.QRCode, d.ProfilePicture,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		r.log.Error("failed to create driver", logger.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *driverRepo) scanDriver(row pgx.Row) (*models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID, &d.LicenseNumber, &d.NICNumber, &d.DivisionID, &d.Surname, &d.Firstname,
		&d.MiddleName, &d.LastName, &d.DateOfBirth, &d.DateOfIssue, &d.DateOfExpiry,
		&d.Address, &d.Email, &d.MobileNumber, &d.Username, &d.Password, &d.QRCode,
		&d.ProfilePicture, &d.FCMToken, &d.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to scan driver", logger.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *driverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM driver WHERE driver_id = $1`
	return r.scanDriver(r.db.QueryRow(ctx, query, id))
}

func (r *driverRepo) GetByUsername(ctx context.Context, username string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM driver WHERE username = $1`
	return r.scanDriver(r.db.QueryRow(ctx, query, username))
}

func (r *driverRepo) Exists(ctx context.Context, licenseNumber, nicNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM driver WHERE license_number = $1 OR nic_number = $2)`
	err := r.db.QueryRow(ctx, query, licenseNumber, nicNumber).Scan(&exists)
	if err != nil {
		r.log.Error("failed to check driver existence", logger.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *driverRepo) AddVehicle(ctx context.Context, v *models.DriverVehicle) error {
	query := `
		INSERT INTO driver_vehicles (driver_id, vehicle_category, vehicle_issue_date, vehicle_expiry_date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, v.DriverID, v.Category, v.IssueDate, v.ExpiryDate)
	if err != nil {
		r.log.Error("failed to add driver vehicle", logger.Error(err))
	}
	return err
}

func (r *driverRepo) GetVehicles(ctx context.Context, driverID int64) ([]*models.DriverVehicle, error) {
	query := `SELECT id, driver_id, vehicle_category, vehicle_issue_date, vehicle_expiry_date
		FROM driver_vehicles WHERE driver_id = $1`
	rows, err := r.db.Query(ctx, query, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.DriverVehicle
	for rows.Next() {
		var v models.DriverVehicle
		if err := rows.Scan(&v.ID, &v.DriverID, &v.Category, &v.IssueDate, &v.ExpiryDate); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}

func (r *driverRepo) UpdateFCMToken(ctx context.Context, id int64, fcmToken string) error {
	_, err := r.db.Exec(ctx, "UPDATE driver SET fcm_token=$1 WHERE driver_id=$2", fcmToken, id)
	return err
}
