package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/models"
	"roadfine/storage"
)

// In-memory storage fakes. Repos are exercised against a database in
// production; the services only need the interface contracts.

type fakeStorage struct {
	drivers       *fakeDriverStorage
	divisions     *fakeDivisionStorage
	fines         *fakeFineStorage
	payments      *fakePaymentStorage
	notifications *fakeNotificationStorage
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		drivers:       &fakeDriverStorage{},
		divisions:     &fakeDivisionStorage{},
		fines:         &fakeFineStorage{},
		payments:      &fakePaymentStorage{},
		notifications: &fakeNotificationStorage{},
	}
}

func (s *fakeStorage) Driver() storage.IDriverStorage             { return s.drivers }
func (s *fakeStorage) Division() storage.IDivisionStorage         { return s.divisions }
func (s *fakeStorage) Fine() storage.IFineStorage                 { return s.fines }
func (s *fakeStorage) Payment() storage.IPaymentStorage           { return s.payments }
func (s *fakeStorage) Notification() storage.INotificationStorage { return s.notifications }
func (s *fakeStorage) Close()                                     {}
func (s *fakeStorage) GetPool() *pgxpool.Pool                     { return nil }

type fakeDriverStorage struct {
	drivers  []*models.Driver
	vehicles []*models.DriverVehicle
	nextID   int64
}

func (f *fakeDriverStorage) Create(_ context.Context, d *models.Driver) (*models.Driver, error) {
	f.nextID++
	d.ID = f.nextID
	d.CreatedAt = time.Now()
	f.drivers = append(f.drivers, d)
	return d, nil
}

func (f *fakeDriverStorage) GetByID(_ context.Context, id int64) (*models.Driver, error) {
	for _, d := range f.drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDriverStorage) GetByUsername(_ context.Context, username string) (*models.Driver, error) {
	for _, d := range f.drivers {
		if d.Username == username {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDriverStorage) Exists(_ context.Context, licenseNumber, nicNumber string) (bool, error) {
	for _, d := range f.drivers {
		if d.LicenseNumber == licenseNumber || d.NICNumber == nicNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDriverStorage) AddVehicle(_ context.Context, v *models.DriverVehicle) error {
	f.vehicles = append(f.vehicles, v)
	return nil
}

func (f *fakeDriverStorage) GetVehicles(_ context.Context, driverID int64) ([]*models.DriverVehicle, error) {
	var out []*models.DriverVehicle
	for _, v := range f.vehicles {
		if v.DriverID == driverID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeDriverStorage) UpdateFCMToken(_ context.Context, id int64, fcmToken string) error {
	for _, d := range f.drivers {
		if d.ID == id {
			d.FCMToken = &fcmToken
		}
	}
	return nil
}

type fakeDivisionStorage struct {
	divisions []*models.Division
}

func (f *fakeDivisionStorage) Create(_ context.Context, d *models.Division) error {
	f.divisions = append(f.divisions, d)
	return nil
}

func (f *fakeDivisionStorage) GetByEmail(_ context.Context, email string) (*models.Division, error) {
	for _, d := range f.divisions {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDivisionStorage) GetByName(_ context.Context, name string) (*models.Division, error) {
	for _, d := range f.divisions {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDivisionStorage) Exists(_ context.Context, id string) (bool, error) {
	for _, d := range f.divisions {
		if d.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeFineStorage struct {
	fines    []*models.Fine
	stats    models.FineStats
	hotspots []models.Hotspot
}

func (f *fakeFineStorage) GetByID(_ context.Context, id int64) (*models.Fine, error) {
	for _, fine := range f.fines {
		if fine.ID == id {
			return fine, nil
		}
	}
	return nil, nil
}

func (f *fakeFineStorage) GetByDriver(_ context.Context, driverID int64) ([]*models.Fine, error) {
	var out []*models.Fine
	for _, fine := range f.fines {
		if fine.DriverID == driverID {
			out = append(out, fine)
		}
	}
	return out, nil
}

func (f *fakeFineStorage) MarkPaid(_ context.Context, id int64) error {
	for _, fine := range f.fines {
		if fine.ID == id {
			fine.Status = models.FineStatusPaid
		}
	}
	return nil
}

func (f *fakeFineStorage) GetDivisionStats(_ context.Context, _ string) (*models.FineStats, error) {
	stats := f.stats
	return &stats, nil
}

func (f *fakeFineStorage) GetMonthlyHotspots(_ context.Context, _ string) ([]models.Hotspot, error) {
	return f.hotspots, nil
}

type fakePaymentStorage struct {
	payments []*models.Payment
}

func (f *fakePaymentStorage) Create(_ context.Context, p *models.Payment) error {
	p.ID = int64(len(f.payments) + 1)
	p.PaymentDate = time.Now()
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentStorage) GetByFine(_ context.Context, fineID int64) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.FineID == fineID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeNotificationStorage struct {
	notifications []*models.Notification
}

func (f *fakeNotificationStorage) Create(_ context.Context, n *models.Notification) error {
	n.ID = int64(len(f.notifications) + 1)
	n.CreatedAt = time.Now()
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationStorage) GetByUser(_ context.Context, userID int64) ([]*models.Notification, error) {
	out := []*models.Notification{}
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeRegistry struct {
	records  []*models.LicenseRecord
	vehicles []*models.VehicleRecord
}

func (f *fakeRegistry) GetRecord(_ context.Context, licenseNumber, nic string) (*models.LicenseRecord, error) {
	for _, r := range f.records {
		if r.LicenseNumber == licenseNumber && r.NIC == nic {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistry) GetVehicles(_ context.Context, licenseNumber string) ([]*models.VehicleRecord, error) {
	var out []*models.VehicleRecord
	for _, v := range f.vehicles {
		if v.LicenseNumber == licenseNumber {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRegistry) Close() {}

type fakeProvider struct {
	session *models.CheckoutSession
	err     error
	calls   int
}

func (f *fakeProvider) CreateSession(_ context.Context, _ *models.Fine) (*models.CheckoutSession, error) {
	f.calls++
	return f.session, f.err
}

type fakePusher struct {
	pushed []string
}

func (f *fakePusher) Push(deviceToken, title, body string) {
	f.pushed = append(f.pushed, deviceToken)
}
