//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceURL = "http://localhost:8080"

// End-to-end walkthrough against a running service: quote, book,
// confirm, check in, check out, housekeeping.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	quoteReq := map[string]any{
		"check_in":       "2026-01-01",
		"check_out":      "2026-01-04",
		"category":       "deluxe",
		"rooms":          1,
		"adults":         2,
		"payment_method": "credit_card",
	}

	var reservationID string
	var roomID float64

	t.Run("Step1_Quote", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/quotes", quoteReq)
		assert.Equal(t, 200, resp.StatusCode)

		var quote map[string]any
		decodeJSON(t, resp, &quote)
		assert.Equal(t, float64(96200), quote["grand_total"])
	})

	t.Run("Step2_CreateReservation", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/reservations", quoteReq)
		require.Equal(t, 201, resp.StatusCode)

		var res map[string]any
		decodeJSON(t, resp, &res)
		assert.Equal(t, "pending", res["status"])
		reservationID = res["id"].(string)
		roomID = res["room_id"].(float64)
	})

	t.Run("Step3_Confirm", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/reservations/"+reservationID+"/status", map[string]string{"status": "confirmed"})
		require.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Step4_CheckIn", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/reservations/"+reservationID+"/status", map[string]string{"status": "checked_in"})
		require.Equal(t, 200, resp.StatusCode)

		room := getJSON(t, fmt.Sprintf("%s/api/v1/rooms/%.0f", serviceURL, roomID))
		assert.Equal(t, "occupied", room["status"])
	})

	t.Run("Step5_CancelAfterCheckInRejected", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/reservations/"+reservationID+"/status", map[string]string{"status": "cancelled"})
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("Step6_CheckOut", func(t *testing.T) {
		resp := post(t, serviceURL+"/api/v1/reservations/"+reservationID+"/status", map[string]string{"status": "checked_out"})
		require.Equal(t, 200, resp.StatusCode)

		room := getJSON(t, fmt.Sprintf("%s/api/v1/rooms/%.0f", serviceURL, roomID))
		assert.Equal(t, "cleaning", room["status"])
	})

	t.Run("Step7_CleaningDone", func(t *testing.T) {
		resp := post(t, fmt.Sprintf("%s/api/v1/rooms/%.0f/status", serviceURL, roomID), map[string]string{"status": "available"})
		require.Equal(t, 200, resp.StatusCode)
	})
}

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(serviceURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready")
}

func post(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, url string) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var out map[string]any
	decodeJSON(t, resp, &out)
	return out
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
