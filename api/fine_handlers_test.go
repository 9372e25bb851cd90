package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadfine/pkg/models"
	"roadfine/pkg/token"
	"roadfine/service"
)

func TestDriverFines(t *testing.T) {
	t.Run("no fines for the driver", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.fine.finesErr = service.ErrNotFound
		s, _ := newTestServer(mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/fines",
			`{"driver_id":42,"api_key":"`+testAPIKey+`"}`, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No fines found for the provided driver_id.", w.Body.String())
	})

	t.Run("wrong api key", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/fines",
			`{"driver_id":42,"api_key":"wrong"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns the fines", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.fine.fines = []*models.Fine{
			{ID: 1, DriverID: 42, Amount: 2500, Description: "Speeding in a 50 zone", Status: models.FineStatusNotPaid},
		}
		s, _ := newTestServer(mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/fines",
			`{"driver_id":42,"api_key":"`+testAPIKey+`"}`, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"fines"`)
		assert.Contains(t, w.Body.String(), "Speeding in a 50 zone")
	})
}

func TestDriverFinesHistory(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		mgr := newFakeManager()
		s, _ := newTestServer(mgr)

		w := doJSON(t, s, http.MethodPost, "/driver/fines-history",
			`{"driver_id":42,"api_key":"`+testAPIKey+`"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("driver without fines", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.fine.historyErr = service.ErrNotFound
		s, tokens := newTestServer(mgr)
		valid, err := tokens.Generate("42", token.TTL)
		require.NoError(t, err)

		w := doJSON(t, s, http.MethodPost, "/driver/fines-history",
			`{"driver_id":42,"api_key":"`+testAPIKey+`"}`,
			map[string]string{"Authorization": "Bearer " + valid})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No fines found for this driver.", w.Body.String())
	})

	t.Run("returns the history", func(t *testing.T) {
		mgr := newFakeManager()
		mgr.fine.history = &models.FineHistory{
			DriverID:   42,
			FullName:   "kasun",
			LicenseID:  "B1234567",
			NationalID: "902345678V",
			Fines: []models.FineHistoryEntry{
				{OffenceIssue: "Speeding in a 50 zone", DateIssue: "2024-01-25", DateExpire: "2024-02-08"},
			},
		}
		s, tokens := newTestServer(mgr)
		valid, err := tokens.Generate("42", token.TTL)
		require.NoError(t, err)

		w := doJSON(t, s, http.MethodPost, "/driver/fines-history",
			`{"driver_id":42,"api_key":"`+testAPIKey+`"}`,
			map[string]string{"Authorization": "Bearer " + valid})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2024-02-08")
		assert.Contains(t, w.Body.String(), "B1234567")
	})
}
