package service

import (
	"context"
	"errors"

	"roadfine/pkg/logger"
	"roadfine/pkg/models"
	"roadfine/pkg/notify"
	"roadfine/pkg/qr"
	"roadfine/pkg/token"
	"roadfine/storage"
)

// Sentinel errors let the HTTP layer pick a status without inspecting
// storage internals. Credential failures deliberately share one error so a
// caller cannot tell a bad key, unknown principal and wrong password apart.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrLicenseMismatch    = errors.New("license number and nic do not match")
	ErrDivisionNotFound   = errors.New("division not found")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrIncompleteRecord   = errors.New("missing essential driver information")
	ErrAlreadyPaid        = errors.New("fine is already paid")
)

// CheckoutProvider creates a hosted payment-collection session for a fine
// with the external provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, fine *models.Fine) (*models.CheckoutSession, error)
}

type IServiceManager interface {
	Auth() AuthService
	Fine() FineService
	Payment() PaymentService
}

type service struct {
	authService    AuthService
	fineService    FineService
	paymentService PaymentService
}

func New(
	stg storage.IStorage,
	registry storage.ILicenseRegistry,
	tokens *token.Service,
	codes *qr.Generator,
	provider CheckoutProvider,
	pusher notify.Pusher,
	log logger.ILogger,
) IServiceManager {
	return &service{
		authService:    NewAuthService(stg, registry, tokens, codes, log),
		fineService:    NewFineService(stg, log),
		paymentService: NewPaymentService(stg, provider, pusher, log),
	}
}

func (s *service) Auth() AuthService {
	return s.authService
}

func (s *service) Fine() FineService {
	return s.fineService
}

func (s *service) Payment() PaymentService {
	return s.paymentService
}
