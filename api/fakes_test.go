package api

import (
	"context"

	"roadfine/pkg/models"
	"roadfine/service"
)

type fakeAuthService struct {
	driverLoginErr   error
	driverSession    *models.DriverSession
	divisionLoginErr error
	dashboard        *models.DivisionDashboard
	signupErr        error
	divisionErr      error
	savedTokens      map[int64]string
}

func (f *fakeAuthService) DriverLogin(_ context.Context, _, _ string) (*models.DriverSession, error) {
	return f.driverSession, f.driverLoginErr
}

func (f *fakeAuthService) DivisionLogin(_ context.Context, _, _ string) (*models.DivisionDashboard, error) {
	return f.dashboard, f.divisionLoginErr
}

func (f *fakeAuthService) DriverSignup(_ context.Context, _ *models.DriverSignupRequest) error {
	return f.signupErr
}

func (f *fakeAuthService) DivisionSignup(_ context.Context, _ *models.Division) error {
	return f.divisionErr
}

func (f *fakeAuthService) SaveFCMToken(_ context.Context, driverID int64, fcmToken string) error {
	if f.savedTokens == nil {
		f.savedTokens = map[int64]string{}
	}
	f.savedTokens[driverID] = fcmToken
	return nil
}

type fakeFineService struct {
	fines      []*models.Fine
	finesErr   error
	history    *models.FineHistory
	historyErr error
}

func (f *fakeFineService) GetDriverFines(_ context.Context, _ int64) ([]*models.Fine, error) {
	return f.fines, f.finesErr
}

func (f *fakeFineService) GetHistory(_ context.Context, _ int64) (*models.FineHistory, error) {
	return f.history, f.historyErr
}

type confirmedPayment struct {
	FineID     int64
	DriverID   int64
	Amount     float64
	ReceiptURL string
}

type fakePaymentService struct {
	session     *models.CheckoutSession
	checkoutErr error
	confirmErr  error
	confirmed   []confirmedPayment
}

func (f *fakePaymentService) CreateCheckout(_ context.Context, _ int64) (*models.CheckoutSession, error) {
	return f.session, f.checkoutErr
}

func (f *fakePaymentService) ConfirmPayment(_ context.Context, fineID, driverID int64, amount float64, receiptURL string) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmed = append(f.confirmed, confirmedPayment{FineID: fineID, DriverID: driverID, Amount: amount, ReceiptURL: receiptURL})
	return nil
}

type fakeManager struct {
	auth    *fakeAuthService
	fine    *fakeFineService
	payment *fakePaymentService
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		auth:    &fakeAuthService{},
		fine:    &fakeFineService{},
		payment: &fakePaymentService{},
	}
}

func (m *fakeManager) Auth() service.AuthService       { return m.auth }
func (m *fakeManager) Fine() service.FineService       { return m.fine }
func (m *fakeManager) Payment() service.PaymentService { return m.payment }
