package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/models"
)

type IStorage interface {
	Driver() IDriverStorage
	Division() IDivisionStorage
	Fine() IFineStorage
	Payment() IPaymentStorage
	Notification() INotificationStorage
	Close()
	GetPool() *pgxpool.Pool
}

type IDriverStorage interface {
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	GetByUsername(ctx context.Context, username string) (*models.Driver, error)
	Exists(ctx context.Context, licenseNumber, nicNumber string) (bool, error)
	AddVehicle(ctx context.Context, vehicle *models.DriverVehicle) error
	GetVehicles(ctx context.Context, driverID int64) ([]*models.DriverVehicle, error)
	UpdateFCMToken(ctx context.Context, id int64, fcmToken string) error
}

type IDivisionStorage interface {
	Create(ctx context.Context, division *models.Division) error
	GetByEmail(ctx context.Context, email string) (*models.Division, error)
	GetByName(ctx context.Context, name string) (*models.Division, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type IFineStorage interface {
	GetByID(ctx context.Context, id int64) (*models.Fine, error)
	GetByDriver(ctx context.Context, driverID int64) ([]*models.Fine, error)
	MarkPaid(ctx context.Context, id int64) error
	GetDivisionStats(ctx context.Context, divisionID string) (*models.FineStats, error)
	GetMonthlyHotspots(ctx context.Context, divisionID string) ([]models.Hotspot, error)
}

type IPaymentStorage interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByFine(ctx context.Context, fineID int64) ([]*models.Payment, error)
}

type INotificationStorage interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
}

// ILicenseRegistry is the read-only view over the external license database.
// Nothing in this service ever writes through it.
type ILicenseRegistry interface {
	GetRecord(ctx context.Context, licenseNumber, nic string) (*models.LicenseRecord, error)
	GetVehicles(ctx context.Context, licenseNumber string) ([]*models.VehicleRecord, error)
	Close()
}
