package service

import (
	"context"
	"time"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

// settlementPeriod is how long a driver has to settle a fine after it is
// issued. Fixed at 14 days, not configurable.
const settlementPeriod = 14

type FineService interface {
	GetDriverFines(ctx context.Context, driverID int64) ([]*models.Fine, error)
	GetHistory(ctx context.Context, driverID int64) (*models.FineHistory, error)
}

type fineService struct {
	fines   storage.IFineStorage
	drivers storage.IDriverStorage
	log     logger.ILogger
}

func NewFineService(stg storage.IStorage, log logger.ILogger) FineService {
	return &fineService{
		fines:   stg.Fine(),
		drivers: stg.Driver(),
		log:     log,
	}
}

func (s *fineService) GetDriverFines(ctx context.Context, driverID int64) ([]*models.Fine, error) {
	fines, err := s.fines.GetByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if len(fines) == 0 {
		return nil, ErrNotFound
	}
	return fines, nil
}

func (s *fineService) GetHistory(ctx context.Context, driverID int64) (*models.FineHistory, error) {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrNotFound
	}

	fines, err := s.fines.GetByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if len(fines) == 0 {
		return nil, ErrNotFound
	}

	history := &models.FineHistory{
		DriverID:   driver.ID,
		FullName:   driver.Username,
		LicenseID:  driver.LicenseNumber,
		NationalID: driver.NICNumber,
		Fines:      make([]models.FineHistoryEntry, 0, len(fines)),
	}
	for _, f := range fines {
		history.Fines = append(history.Fines, models.FineHistoryEntry{
			OffenceIssue: f.Description,
			Amount:       f.Amount,
			DateIssue:    f.Date.Format("2006-01-02"),
			DateExpire:   SettlementDeadline(f.Date).Format("2006-01-02"),
		})
	}
	return history, nil
}

// SettlementDeadline is the last day a fine can be settled: 14 days after
// the issue date.
func SettlementDeadline(issued time.Time) time.Time {
	return issued.AddDate(0, 0, settlementPeriod)
}
