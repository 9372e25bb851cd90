package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

type paymentRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewPaymentRepo(db *pgxpool.Pool, log logger.ILogger) storage.IPaymentStorage {
	return &paymentRepo{db: db, log: log}
}

// Create appends a completed transaction. Payments are never updated or
// deleted.
func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (fine_id, driver_id, amount, status, receipt_url, payment_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, p.FineID, p.DriverID, p.Amount, p.Status, p.ReceiptURL)
	if err != nil {
		r.log.Error("failed to create payment", logger.Error(err))
	}
	return err
}

func (r *paymentRepo) GetByFine(ctx context.Context, fineID int64) ([]*models.Payment, error) {
	query := `SELECT payment_id, fine_id, driver_id, amount, status, receipt_url, payment_date
		FROM payments WHERE fine_id = $1`
	rows, err := r.db.Query(ctx, query, fineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.FineID, &p.DriverID, &p.Amount, &p.Status, &p.ReceiptURL, &p.PaymentDate)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
