package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

type fineRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewFineRepo(db *pgxpool.Pool, log logger.ILogger) storage.IFineStorage {
	return &fineRepo{db: db, log: log}
}

func (r *fineRepo) GetByID(ctx context.Context, id int64) (*models.Fine, error) {
	var f models.Fine
	query := `SELECT fine_id, driver_id, division_id, amount, description, category, status, date, lat, lon
		FROM fines WHERE fine_id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.DriverID, &f.DivisionID, &f.Amount, &f.Description, &f.Category, &f.Status, &f.Date, &f.Lat, &f.Lon,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get fine by id", logger.Error(err))
		return nil, err
	}
	return &f, nil
}

func (r *fineRepo) GetByDriver(ctx context.Context, driverID int64) ([]*models.Fine, error) {
	query := `SELECT fine_id, driver_id, division_id, amount, description, category, status, date
		FROM fines WHERE driver_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, driverID)
	if err != nil {
		r.log.Error("failed to get fines for driver", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fines []*models.Fine
	for rows.Next() {
		var f models.Fine
		err := rows.Scan(&f.ID, &f.DriverID, &f.DivisionID, &f.Amount, &f.Description, &f.Category, &f.Status, &f.Date)
		if err != nil {
			return nil, err
		}
		fines = append(fines, &f)
	}
	return fines, rows.Err()
}

// MarkPaid is the only mutation a fine ever sees: not paid -> paid, driven
// by the payment webhook.
func (r *fineRepo) MarkPaid(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE fines SET status='paid' WHERE fine_id=$1", id)
	if err != nil {
		r.log.Error("failed to mark fine paid", logger.Error(err))
	}
	return err
}

func (r *fineRepo) GetDivisionStats(ctx context.Context, divisionID string) (*models.FineStats, error) {
	var stats models.FineStats
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'not paid'),
			COUNT(*) FILTER (WHERE date >= CURRENT_DATE - INTERVAL '2 months'),
			COUNT(*) FILTER (WHERE EXTRACT(YEAR FROM date) = EXTRACT(YEAR FROM CURRENT_DATE))
		FROM fines
		WHERE division_id = $1
	`
	err := r.db.QueryRow(ctx, query, divisionID).Scan(
		&stats.Issued, &stats.Paid, &stats.Remaining, &stats.LastTwoMonth, &stats.ThisYear,
	)
	if err != nil {
		r.log.Error("failed to get division fine stats", logger.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *fineRepo) GetMonthlyHotspots(ctx context.Context, divisionID string) ([]models.Hotspot, error) {
	query := `
		SELECT lat, lon FROM fines
		WHERE division_id = $1
		  AND date_trunc('month', date) = date_trunc('month', CURRENT_DATE)
	`
	rows, err := r.db.Query(ctx, query, divisionID)
	if err != nil {
		r.log.Error("failed to get violation hotspots", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	hotspots := []models.Hotspot{}
	for rows.Next() {
		var h models.Hotspot
		if err := rows.Scan(&h.Lat, &h.Lon); err != nil {
			return nil, err
		}
		hotspots = append(hotspots, h)
	}
	return hotspots, rows.Err()
}
