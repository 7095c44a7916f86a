package controllers_test

import (
	"net/http"
	"testing"

	"pawsgroom-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingPayload(serviceIDs []string, date, timeSlot string) map[string]interface{} {
	return map[string]interface{}{
		"customerName":    "Jamie Doe",
		"customerEmail":   "jamie@example.com",
		"customerPhone":   "+15551234567",
		"petName":         "Rex",
		"petType":         "dog",
		"petBreed":        "Beagle",
		"services":        serviceIDs,
		"appointmentDate": date,
		"appointmentTime": timeSlot,
		"specialRequests": "Please be gentle",
	}
}

func TestBookingLifecycle(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t)
	token := adminToken(t)

	serviceA := createService(t, db, "Service A", 45, 60, "grooming", true)
	serviceB := createService(t, db, "Service B", 35, 45, "bathing", true)

	// Public create: total is the sum of the selected service prices,
	// status starts pending
	w := doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{serviceA.ID.String(), serviceB.ID.String()}, "2026-09-15", "10:00"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Equal(t, 80.0, created["totalPrice"])
	assert.Equal(t, "pending", created["status"])
	bookingID := created["id"].(string)

	// pending -> confirmed
	w = doJSON(t, router, "PUT", "/api/bookings/"+bookingID+"/status", map[string]interface{}{
		"status": "confirmed",
		"notes":  "called the customer",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, 80.0, body["totalPrice"])
	assert.Equal(t, "called the customer", body["notes"])
	assert.Len(t, body["services"].([]interface{}), 2)

	// confirmed -> completed
	w = doJSON(t, router, "PUT", "/api/bookings/"+bookingID+"/status", map[string]interface{}{
		"status": "completed",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decodeBody(t, w)["status"])

	// Admin list: expanded, latest appointment first
	w = doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{serviceA.ID.String()}, "2026-09-20", "09:00"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/bookings", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-09-20", list[0]["appointmentDate"].(string)[:10])
	assert.Equal(t, "2026-09-15", list[1]["appointmentDate"].(string)[:10])
}

func TestBookingStatusRejected(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t)
	token := adminToken(t)

	service := createService(t, db, "Bath", 35, 45, "bathing", true)

	w := doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{service.ID.String()}, "2026-10-01", "14:00"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "PUT", "/api/bookings/"+bookingID+"/status", map[string]interface{}{
		"status": "archived",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Stored status is unchanged
	var booking models.Booking
	require.NoError(t, db.First(&booking, "id = ?", bookingID).Error)
	assert.Equal(t, "pending", booking.Status)
}

func TestBookingValidation(t *testing.T) {
	setupTestDB(t)
	router, _ := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/bookings", map[string]interface{}{
		"customerName":  "",
		"customerEmail": "not-an-email",
		"petType":       "hamster",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	errs := decodeBody(t, w)["errors"].([]interface{})
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fields["customerName"])
	assert.True(t, fields["customerEmail"])
	assert.True(t, fields["petType"])
	assert.True(t, fields["services"])
	assert.True(t, fields["appointmentDate"])
	assert.True(t, fields["appointmentTime"])
}

func TestBookingPhoneOnlyRequiresPresence(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t)

	service := createService(t, db, "Bath", 35, 45, "bathing", true)

	// Any non-empty phone string is accepted; no format is imposed
	payload := bookingPayload([]string{service.ID.String()}, "2026-10-03", "10:00")
	payload["customerPhone"] = "555-HOME ext. 2"
	w := doJSON(t, router, "POST", "/api/bookings", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// A blank one is not
	payload = bookingPayload([]string{service.ID.String()}, "2026-10-03", "10:30")
	payload["customerPhone"] = "   "
	w = doJSON(t, router, "POST", "/api/bookings", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	errs := decodeBody(t, w)["errors"].([]interface{})
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fields["customerPhone"])
}

func TestBookingEmptyServicesAllowed(t *testing.T) {
	setupTestDB(t)
	router, _ := setupRouter(t)

	// The form expects at least one service but the API does not enforce it
	w := doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{}, "2026-10-02", "11:00"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0.0, decodeBody(t, w)["totalPrice"])
}

func TestBookingFullUpdateRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t)
	token := adminToken(t)

	service := createService(t, db, "Deluxe", 65, 90, "grooming", true)

	w := doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{service.ID.String()}, "2026-10-05", "15:00"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	bookingID := created["id"].(string)
	assert.Equal(t, 65.0, created["totalPrice"])

	// Raise the price; the captured total does not move on its own
	require.NoError(t, db.Model(&models.Service{}).
		Where("id = ?", service.ID).Update("price", 75).Error)

	w = doJSON(t, router, "GET", "/api/bookings/"+bookingID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 65.0, decodeBody(t, w)["totalPrice"])

	// A full update recomputes from the current prices
	payload := bookingPayload([]string{service.ID.String()}, "2026-10-05", "15:00")
	payload["status"] = "confirmed"
	payload["notes"] = "rebooked"
	w = doJSON(t, router, "PUT", "/api/bookings/"+bookingID, payload, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, 75.0, body["totalPrice"])
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, "rebooked", body["notes"])
}

func TestBookingUnknownServiceIgnored(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t)

	service := createService(t, db, "Bath", 35, 45, "bathing", true)

	// A well-formed id with no record behind it simply contributes nothing
	w := doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{service.ID.String(), uuid.NewString()}, "2026-10-06", "09:30"), "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, 35.0, body["totalPrice"])
	assert.Len(t, body["services"].([]interface{}), 1)
}

func TestDeleteBooking(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t)
	token := adminToken(t)

	service := createService(t, db, "Bath", 35, 45, "bathing", true)

	w := doJSON(t, router, "POST", "/api/bookings",
		bookingPayload([]string{service.ID.String()}, "2026-10-07", "16:00"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, "DELETE", "/api/bookings/"+bookingID, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// Gone now, and no cascade touched the service
	w = doJSON(t, router, "GET", "/api/bookings/"+bookingID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "DELETE", "/api/bookings/"+bookingID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
