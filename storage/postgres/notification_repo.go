package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/storage"
)

type notificationRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewNotificationRepo(db *pgxpool.Pool, log logger.ILogger) storage.INotificationStorage {
	return &notificationRepo{db: db, log: log}
}

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	query := `INSERT INTO notifications (user_id, title, message) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, n.UserID, n.Title, n.Message)
	if err != nil {
		r.log.Error("failed to create notification", logger.Error(err))
	}
	return err
}

func (r *notificationRepo) GetByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	query := `SELECT id, user_id, title, message, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to get notifications", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}
