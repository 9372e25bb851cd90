package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"roadfine/pkg/models"
)

// StripeProvider creates hosted checkout sessions. The fine and driver ids
// ride along in the session metadata so the webhook can reconcile the fine
// without keeping any checkout state on our side.
type StripeProvider struct {
	frontendURL string
}

func NewStripeProvider(secretKey, frontendURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{frontendURL: frontendURL}
}

func (p *StripeProvider) CreateSession(ctx context.Context, fine *models.Fine) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Fine Payment for Fine ID: %d", fine.ID)),
					},
					// Stripe takes the amount in cents. Rounded, not
					// truncated: 19.99 * 100 is 1998.999... in floating point.
					UnitAmount: stripe.Int64(int64(math.Round(fine.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.frontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.frontendURL + "/payment-cancel"),
	}
	params.Context = ctx
	params.AddMetadata("fine_id", strconv.FormatInt(fine.ID, 10))
	params.AddMetadata("driver_id", strconv.FormatInt(fine.DriverID, 10))

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutSession{
		SessionID: s.ID,
		URL:       s.URL,
	}, nil
}
