package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"roadfine/pkg/models"
	"roadfine/pkg/token"
	"roadfine/service"
)

func TestCreateCheckoutSessionHandler(t *testing.T) {
	newAuthedRequest := func(t *testing.T, mgr *fakeManager) (*Server, map[string]string) {
		t.Helper()
		s, tokens := newTestServer(mgr)
		valid, err := tokens.Generate("42", token.TTL)
		require.NoError(t, err)
		return s, map[string]string{"Authorization": "Bearer " + valid}
	}

	t.Run("unknown fine", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.payment.checkoutErr = service.ErrNotFound
		s, headers := newAuthedRequest(t, mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/create-checkout-session",
			`{"fine_id":123,"api_key":"`+testAPIKey+`"}`, headers)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Fine not found.", w.Body.String())
	})

	t.Run("already paid fine", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.payment.checkoutErr = service.ErrAlreadyPaid
		s, headers := newAuthedRequest(t, mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/create-checkout-session",
			`{"fine_id":5,"api_key":"`+testAPIKey+`"}`, headers)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "This fine is already paid.", w.Body.String())
	})

	t.Run("returns the session for an unpaid fine", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.payment.session = &models.CheckoutSession{SessionID: "cs_test_1", URL: "https://checkout.test/cs_test_1"}
		s, headers := newAuthedRequest(t, mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/create-checkout-session",
			`{"fine_id":5,"api_key":"`+testAPIKey+`"}`, headers)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sessionId":"cs_test_1","url":"https://checkout.test/cs_test_1"}`, w.Body.String())
	})

	t.Run("rejected without a token", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/create-checkout-session",
			`{"fine_id":5,"api_key":"`+testAPIKey+`"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// signPayload builds a Stripe-Signature header over payload the way the
// provider does: v1 is an HMAC-SHA256 of "<timestamp>.<payload>".
func signPayload(secret, payload string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func completedSessionPayload() string {
	return fmt.Sprintf(`{
		"id": "evt_test_1",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_1",
				"amount_total": 250000,
				"metadata": {"fine_id": "5", "driver_id": "42"}
			}
		}
	}`, stripe.APIVersion)
}

func TestWebhook(t *testing.T) {
	t.Run("rejects an unsigned payload", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		w := doJSON(t, s, http.MethodPost, "/webhook", completedSessionPayload(), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mgr.payment.confirmed)
	})

	t.Run("rejects a payload signed with the wrong secret", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		payload := completedSessionPayload()
		w := doJSON(t, s, http.MethodPost, "/webhook", payload,
			map[string]string{"Stripe-Signature": signPayload("whsec_other", payload)})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mgr.payment.confirmed)
	})

	t.Run("confirms the payment for a completed checkout session", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		payload := completedSessionPayload()
		w := doJSON(t, s, http.MethodPost, "/webhook", payload,
			map[string]string{"Stripe-Signature": signPayload("whsec_test", payload)})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())

		require.Len(t, mgr.payment.confirmed, 1)
		got := mgr.payment.confirmed[0]
		assert.Equal(t, int64(5), got.FineID)
		assert.Equal(t, int64(42), got.DriverID)
		assert.Equal(t, 2500.0, got.Amount)
		assert.Empty(t, got.ReceiptURL)
	})

	t.Run("acknowledges unhandled event types without side effects", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		payload := fmt.Sprintf(`{"id":"evt_test_2","api_version":%q,"type":"invoice.paid","data":{"object":{}}}`, stripe.APIVersion)
		w := doJSON(t, s, http.MethodPost, "/webhook", payload,
			map[string]string{"Stripe-Signature": signPayload("whsec_test", payload)})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
		assert.Empty(t, mgr.payment.confirmed)
	})
}
