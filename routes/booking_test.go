package routes

import (
	"net/http"
	"testing"

	"ngekos-server/models"
)

func TestComputePriceBreakdown(t *testing.T) {
	cases := []struct {
		roomPrice                 int
		wantRent, wantFee, wantTotal int
	}{
		{3500000, 3500000, 35000, 3585000},
		{1000000, 1000000, 10000, 1060000},
		{1500050, 1500050, 15001, 1565051}, // rounds half up
	}
	for _, c := range cases {
		rent, adminFee, total := computePriceBreakdown(c.roomPrice)
		if rent != c.wantRent || adminFee != c.wantFee || total != c.wantTotal {
			t.Errorf("computePriceBreakdown(%d) = (%d, %d, %d), want (%d, %d, %d)",
				c.roomPrice, rent, adminFee, total, c.wantRent, c.wantFee, c.wantTotal)
		}
	}
}

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		id   uint
		want string
	}{
		{1, "ORD-001"},
		{42, "ORD-042"},
		{999, "ORD-999"},
		{1000, "ORD-1000"},
	}
	for _, c := range cases {
		if got := formatOrderNumber(c.id); got != c.want {
			t.Errorf("formatOrderNumber(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestOrderNumberIsUnsetBeforeAssignment(t *testing.T) {
	var order models.Order
	if order.OrderNumber != nil {
		t.Fatal("fresh order should carry no order number before the row id exists")
	}

	order.ID = 7
	orderNumber := formatOrderNumber(order.ID)
	order.OrderNumber = &orderNumber
	if *order.OrderNumber != "ORD-007" {
		t.Fatalf("expected ORD-007, got %q", *order.OrderNumber)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-04-01")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 4 || d.Day() != 1 {
		t.Fatalf("unexpected date %v", d)
	}

	checkOut := d.AddDate(0, 3, 0)
	if checkOut.Month() != 7 || checkOut.Day() != 1 {
		t.Fatalf("3-month checkout from %v should land on July 1, got %v", d, checkOut)
	}

	if _, err := parseDate("not-a-date"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestCreateBookingRejectsInvalidPayload(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/bookings", `{"kosId": 1}`, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}

func TestCreateBookingRejectsInvalidCheckIn(t *testing.T) {
	app := newTestApp(t)

	body := `{
		"kosId": 1, "roomId": 1, "checkIn": "yesterday", "duration": 3,
		"paymentMethod": "bank_transfer",
		"guestInfo": {"fullName": "Budi Santoso", "email": "budi@example.com",
			"phone": "0812345678", "address": "Jl. Merdeka 1", "idNumber": "3174012345"}
	}`
	resp := doJSON(t, app, http.MethodPost, "/api/bookings", body, signTestToken())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad checkIn, got %d: %s", resp.Code, resp.Body.String())
	}
	assertEnvelopeError(t, resp.Body.String(), "VALIDATION_ERROR")
}
