package service

import (
	"context"
	"fmt"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/pkg/notify"
	"roadfine/storage"
)

type PaymentService interface {
	CreateCheckout(ctx context.Context, fineID int64) (*models.CheckoutSession, error)
	ConfirmPayment(ctx context.Context, fineID, driverID int64, amount float64, receiptURL string) error
}

type paymentService struct {
	fines         storage.IFineStorage
	payments      storage.IPaymentStorage
	drivers       storage.IDriverStorage
	notifications storage.INotificationStorage
	provider      CheckoutProvider
	pusher        notify.Pusher
	log           logger.ILogger
}

func NewPaymentService(stg storage.IStorage, provider CheckoutProvider, pusher notify.Pusher, log logger.ILogger) PaymentService {
	return &paymentService{
		fines:         stg.Fine(),
		payments:      stg.Payment(),
		drivers:       stg.Driver(),
		notifications: stg.Notification(),
		provider:      provider,
		pusher:        pusher,
		log:           log,
	}
}

func (s *paymentService) CreateCheckout(ctx context.Context, fineID int64) (*models.CheckoutSession, error) {
	fine, err := s.fines.GetByID(ctx, fineID)
	if err != nil {
		return nil, err
	}
	if fine == nil {
		return nil, ErrNotFound
	}
	if fine.Status == models.FineStatusPaid {
		return nil, ErrAlreadyPaid
	}

	session, err := s.provider.CreateSession(ctx, fine)
	if err != nil {
		s.log.Error("failed to create checkout session", logger.Error(err))
		return nil, err
	}
	return session, nil
}

// ConfirmPayment runs after the provider's webhook signature has been
// verified: it flips the fine to paid, appends the payment record and lets
// the driver know.
func (s *paymentService) ConfirmPayment(ctx context.Context, fineID, driverID int64, amount float64, receiptURL string) error {
	if err := s.fines.MarkPaid(ctx, fineID); err != nil {
		return err
	}

	err := s.payments.Create(ctx, &models.Payment{
		FineID:     fineID,
		DriverID:   driverID,
		Amount:     amount,
		Status:     "succeeded",
		ReceiptURL: receiptURL,
	})
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Your payment of %.2f for fine #%d was received.", amount, fineID)
	err = s.notifications.Create(ctx, &models.Notification{
		UserID:  driverID,
		Title:   "Fine paid",
		Message: message,
	})
	if err != nil {
		// The payment itself went through; a missing notification row is
		// not worth failing the webhook over.
		s.log.Error("failed to store payment notification", logger.Error(err))
	}

	driver, err := s.drivers.GetByID(ctx, driverID)
	if err == nil && driver != nil && driver.FCMToken != nil {
		s.pusher.Push(*driver.FCMToken, "Fine paid", message)
	}

	return nil
}
