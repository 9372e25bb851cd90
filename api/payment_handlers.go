package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"roadfine/pkg/logger"
	"roadfine/service"
)

type checkoutRequest struct {
	FineID int64  `json:"fine_id"`
	APIKey string `json:"api_key"`
}

func (s *Server) createCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !s.checkAPIKey(c, req.APIKey) {
		return
	}

	session, err := s.svc.Payment().CreateCheckout(c.Request.Context(), req.FineID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.String(http.StatusNotFound, "Fine not found.")
		case errors.Is(err, service.ErrAlreadyPaid):
			c.String(http.StatusBadRequest, "This fine is already paid.")
		default:
			s.log.Error("checkout session creation failed", logger.Error(err))
			c.String(http.StatusInternalServerError, "Failed to create checkout session.")
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// webhook handles provider callbacks. The signature is verified over the
// raw, unparsed body; nothing in the payload is trusted before that check
// passes.
func (s *Server) webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Unable to read request.")
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), s.cfg.StripeWebhookSecret)
	if err != nil {
		s.log.Warning("webhook signature verification failed", logger.Error(err))
		c.String(http.StatusBadRequest, "Webhook signature verification failed.")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			s.log.Error("failed to parse checkout session event", logger.Error(err))
			c.String(http.StatusBadRequest, "Malformed event payload.")
			return
		}

		fineID, err := strconv.ParseInt(session.Metadata["fine_id"], 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "Malformed event payload.")
			return
		}
		driverID, err := strconv.ParseInt(session.Metadata["driver_id"], 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "Malformed event payload.")
			return
		}

		var receiptURL string
		if session.PaymentIntent != nil && session.PaymentIntent.LatestCharge != nil {
			receiptURL = session.PaymentIntent.LatestCharge.ReceiptURL
		}

		amount := float64(session.AmountTotal) / 100
		if err := s.svc.Payment().ConfirmPayment(c.Request.Context(), fineID, driverID, amount, receiptURL); err != nil {
			s.log.Error("failed to confirm payment", logger.Error(err))
			c.String(http.StatusInternalServerError, "Server error.")
			return
		}
	default:
		s.log.Warning("unhandled webhook event type", logger.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
