package models

type Division struct {
	ID       string `json:"division_id"`
	Name     string `json:"division_name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Password string `json:"-"`
}

// FineStats carries the aggregate counters shown on the division dashboard
// right after login.
type FineStats struct {
	Issued       int `json:"issued_fines"`
	Paid         int `json:"paid_fines"`
	Remaining    int `json:"remaining_fines"`
	LastTwoMonth int `json:"last_two_month_fines"`
	ThisYear     int `json:"this_year_fines"`
}

type Hotspot struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
