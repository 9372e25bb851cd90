package models

import "time"

// LicenseRecord mirrors a row of the external license registry. The registry
// is read-only ground truth: its fields are copied onto the driver at signup
// and never written back.
type LicenseRecord struct {
	LicenseNumber  string
	NIC            string
	Surname        string
	FirstName      string
	MiddleName     string
	LastName       string
	DateOfBirth    *time.Time
	DateOfIssue    *time.Time
	DateOfExpiry   *time.Time
	Address        string
	Email          string
	MobileNumber   string
	ProfilePicture string
}

// Essential reports whether the record carries the fields a driver row
// cannot be created without.
func (r *LicenseRecord) Essential() bool {
	return r.Surname != "" && r.FirstName != "" && r.DateOfBirth != nil
}

// VehicleRecord is a vehicle entitlement attached to a license in the
// registry. Records missing any field are skipped at signup.
type VehicleRecord struct {
	LicenseNumber string
	Category      string
	DateOfIssue   *time.Time
	DateOfExpiry  *time.Time
}

func (v *VehicleRecord) Complete() bool {
	return v.Category != "" && v.DateOfIssue != nil && v.DateOfExpiry != nil
}
