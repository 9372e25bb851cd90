package models

// DriverSession is the driver login payload: bearer token plus the profile
// artifacts the mobile app renders on its home screen.
type DriverSession struct {
	Token          string          `json:"token"`
	Username       string          `json:"username"`
	QRCode         string          `json:"qr_code"`
	ProfilePicture string          `json:"profile_picture"`
	Notifications  []*Notification `json:"notifications"`
}

// DivisionDashboard is the division login payload: bearer token plus the
// fine aggregates and this month's violation hotspots.
type DivisionDashboard struct {
	TokenID      string    `json:"token_id"`
	DivisionName string    `json:"division_name"`
	FineStats
	Hotspots []Hotspot `json:"this_month_violation_hotspots"`
}

type DriverSignupRequest struct {
	LicenseNumber string `json:"license_number"`
	NICNumber     string `json:"nic_number"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	DivisionName  string `json:"division_name"`
	APIKey        string `json:"api_key"`
}
