package service

import (
	"context"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/pkg/qr"
	"roadfine/pkg/token"
	"roadfine/storage"
)

type AuthService interface {
	DriverLogin(ctx context.Context, username, password string) (*models.DriverSession, error)
	DivisionLogin(ctx context.Context, email, password string) (*models.DivisionDashboard, error)
	DriverSignup(ctx context.Context, req *models.DriverSignupRequest) error
	DivisionSignup(ctx context.Context, division *models.Division) error
	SaveFCMToken(ctx context.Context, driverID int64, fcmToken string) error
}

type authService struct {
	drivers       storage.IDriverStorage
	divisions     storage.IDivisionStorage
	fines         storage.IFineStorage
	notifications storage.INotificationStorage
	registry      storage.ILicenseRegistry
	tokens        *token.Service
	codes         *qr.Generator
	log           logger.ILogger
}

func NewAuthService(stg storage.IStorage, registry storage.ILicenseRegistry, tokens *token.Service, codes *qr.Generator, log logger.ILogger) AuthService {
	return &authService{
		drivers:       stg.Driver(),
		divisions:     stg.Division(),
		fines:         stg.Fine(),
		notifications: stg.Notification(),
		registry:      registry,
		tokens:        tokens,
		codes:         codes,
		log:           log,
	}
}

func (s *authService) DriverLogin(ctx context.Context, username, password string) (*models.DriverSession, error) {
	driver, err := s.drivers.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	notifications, err := s.notifications.GetByUser(ctx, driver.ID)
	if err != nil {
		return nil, err
	}

	t, err := s.tokens.Generate(strconv.FormatInt(driver.ID, 10), token.TTL)
	if err != nil {
		s.log.Error("failed to generate driver token", logger.Error(err))
		return nil, err
	}

	return &models.DriverSession{
		Token:          t,
		Username:       driver.Username,
		QRCode:         driver.QRCode,
		ProfilePicture: driver.ProfilePicture,
		Notifications:  notifications,
	}, nil
}

func (s *authService) DivisionLogin(ctx context.Context, email, password string) (*models.DivisionDashboard, error) {
	division, err := s.divisions.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(division.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	stats, err := s.fines.GetDivisionStats(ctx, division.ID)
	if err != nil {
		return nil, err
	}

	hotspots, err := s.fines.GetMonthlyHotspots(ctx, division.ID)
	if err != nil {
		return nil, err
	}

	t, err := s.tokens.Generate(division.ID, token.TTL)
	if err != nil {
		s.log.Error("failed to generate division token", logger.Error(err))
		return nil, err
	}

	return &models.DivisionDashboard{
		TokenID:      t,
		DivisionName: division.Name,
		FineStats:    *stats,
		Hotspots:     hotspots,
	}, nil
}

// DriverSignup copies the driver's legal identity out of the license
// registry into the operational database. The sequence is not transactional:
// a failure after the driver insert leaves the vehicle copy incomplete,
// matching the behavior this service replaces.
func (s *authService) DriverSignup(ctx context.Context, req *models.DriverSignupRequest) error {
	record, err := s.registry.GetRecord(ctx, req.LicenseNumber, req.NICNumber)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrLicenseMismatch
	}
	if !record.Essential() {
		return ErrIncompleteRecord
	}

	exists, err := s.drivers.Exists(ctx, req.LicenseNumber, req.NICNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyRegistered
	}

	division, err := s.divisions.GetByName(ctx, req.DivisionName)
	if err != nil {
		return err
	}
	if division == nil {
		return ErrDivisionNotFound
	}

	vehicles, err := s.registry.GetVehicles(ctx, req.LicenseNumber)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	qrPath, err := s.codes.Write(req.LicenseNumber, req.NICNumber, req.Username)
	if err != nil {
		s.log.Error("failed to write driver qr code", logger.Error(err))
		return err
	}

	driver := &models.Driver{
		LicenseNumber:  record.LicenseNumber,
		NICNumber:      record.NIC,
		DivisionID:     division.ID,
		Surname:        record.Surname,
		Firstname:      record.FirstName,
		MiddleName:     record.MiddleName,
		LastName:       record.LastName,
		DateOfBirth:    *record.DateOfBirth,
		Address:        record.Address,
		Email:          record.Email,
		MobileNumber:   record.MobileNumber,
		Username:       req.Username,
		Password:       string(hash),
		QRCode:         qrPath,
		ProfilePicture: record.ProfilePicture,
	}
	if record.DateOfIssue != nil {
		driver.DateOfIssue = *record.DateOfIssue
	}
	if record.DateOfExpiry != nil {
		driver.DateOfExpiry = *record.DateOfExpiry
	}

	driver, err = s.drivers.Create(ctx, driver)
	if err != nil {
		return err
	}

	for _, v := range vehicles {
		if !v.Complete() {
			continue
		}
		err = s.drivers.AddVehicle(ctx, &models.DriverVehicle{
			DriverID:   driver.ID,
			Category:   v.Category,
			IssueDate:  *v.DateOfIssue,
			ExpiryDate: *v.DateOfExpiry,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *authService) DivisionSignup(ctx context.Context, division *models.Division) error {
	exists, err := s.divisions.Exists(ctx, division.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(division.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	division.Password = string(hash)

	return s.divisions.Create(ctx, division)
}

func (s *authService) SaveFCMToken(ctx context.Context, driverID int64, fcmToken string) error {
	return s.drivers.UpdateFCMToken(ctx, driverID, fcmToken)
}
