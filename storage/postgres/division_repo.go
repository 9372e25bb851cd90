package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

type divisionRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDivisionRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDivisionStorage {
	return &divisionRepo{db: db, log: log}
}

func (r *divisionRepo) Create(ctx context.Context, d *models.Division) error {
	query := `
		INSERT INTO police_division (division_id, division_name, email, location, password)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, d.ID, d.Name, d.Email, d.Location, d.Password)
	if err != nil {
		r.log.Error("failed to create division", logger.Error(err))
	}
	return err
}

func (r *divisionRepo) scanDivision(row pgx.Row) (*models.Division, error) {
	var d models.Division
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Location, &d.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to scan division", logger.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *divisionRepo) GetByEmail(ctx context.Context, email string) (*models.Division, error) {
	query := `SELECT division_id, division_name, email, location, password FROM police_division WHERE email = $1`
	return r.scanDivision(r.db.QueryRow(ctx, query, email))
}

func (r *divisionRepo) GetByName(ctx context.Context, name string) (*models.Division, error) {
	query := `SELECT division_id, division_name, email, location, password FROM police_division WHERE division_name = $1`
	return r.scanDivision(r.db.QueryRow(ctx, query, name))
}

func (r *divisionRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM police_division WHERE division_id = $1)", id).Scan(&exists)
	if err != nil {
		r.log.Error("failed to check division existence", logger.Error(err))
		return false, err
	}
	return exists, nil
}
