package models

import "time"

type Driver struct {
	ID             int64     `json:"driver_id"`
	LicenseNumber  string    `json:"license_number"`
	NICNumber      string    `json:"nic_number"`
	DivisionID     string    `json:"division_id"`
	Surname        string    `json:"surname"`
	Firstname      string    `json:"firstname"`
	MiddleName     string    `json:"middle_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	DateOfIssue    time.Time `json:"date_of_issue"`
	DateOfExpiry   time.Time `json:"date_of_expiry"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	MobileNumber   string    `json:"mobile_number"`
	Username       string    `json:"username"`
	Password       string    `json:"-"`
	QRCode         string    `json:"qr_code"`
	ProfilePicture string    `json:"profile_picture"`
	FCMToken       *string   `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

type DriverVehicle struct {
	ID         int64     `json:"id"`
	DriverID   int64     `json:"driver_id"`
	Category   string    `json:"vehicle_category"`
	IssueDate  time.Time `json:"vehicle_issue_date"`
	ExpiryDate time.Time `json:"vehicle_expiry_date"`
}
