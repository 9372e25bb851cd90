package models

import "time"

const (
	FineStatusPaid    = "paid"
	FineStatusNotPaid = "not paid"
)

type Fine struct {
	ID          int64     `json:"fine_id"`
	DriverID    int64     `json:"driver_id"`
	DivisionID  string    `json:"division_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	Lat         float64   `json:"-"`
	Lon         float64   `json:"-"`
}

// FineHistoryEntry is the display form of a fine: the offence text plus the
// issue date and the settlement deadline (14 days after issue).
type FineHistoryEntry struct {
	OffenceIssue string  `json:"offence_issue"`
	Amount       float64 `json:"amount"`
	DateIssue    string  `json:"date_issue"`
	DateExpire   string  `json:"date_expire"`
}

type FineHistory struct {
	DriverID   int64              `json:"driver_id"`
	FullName   string             `json:"full_name"`
	LicenseID  string             `json:"license_id"`
	NationalID string             `json:"national_id"`
	Fines      []FineHistoryEntry `json:"fines"`
}
