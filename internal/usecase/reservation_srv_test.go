package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/dto/request"
	"transfer-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		FullName:        "Jane Traveller",
		Email:           "jane@example.com",
		PickupLocation:  "Airport",
		DropoffLocation: "Hotel Plaza",
		Passengers:      1,
		TotalPrice:      100,
	}
}

func newTestReservationService(reservations *fakeReservationRepo, addOns *fakeAddOnRepo) ReservationService {
	return NewReservationService(newTestRepository(reservations, addOns), zap.NewNop())
}

func TestCreateReservationValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*request.CreateReservationRequest)
		wantMsg string
	}{
		{
			"blank name",
			func(r *request.CreateReservationRequest) { r.FullName = "   " },
			"name required",
		},
		{
			"blank email",
			func(r *request.CreateReservationRequest) { r.Email = "" },
			"email required",
		},
		{
			"negative price",
			func(r *request.CreateReservationRequest) { r.TotalPrice = -10 },
			"price negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReservationRepo()
			svc := newTestReservationService(repo, newFakeAddOnRepo())

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.CreateReservation(context.Background(), req)

			var validationErr *apperr.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("CreateReservation() error = %v, want ValidationError", err)
			}
			if validationErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", validationErr.Message, tt.wantMsg)
			}
			if repo.createCalls != 0 {
				t.Errorf("createCalls = %d, want 0 on validation failure", repo.createCalls)
			}
		})
	}
}

func TestCreateReservationCoercesInput(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo())

	req := validCreateRequest()
	req.Passengers = 0 // coerced to 1, not rejected

	resp, err := svc.CreateReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}
	if resp.Passengers != 1 {
		t.Errorf("Passengers = %d, want 1", resp.Passengers)
	}
	if repo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", repo.createCalls)
	}
}

func TestCreateReservationAdditionalPassengers(t *testing.T) {
	two := []request.AdditionalPassengerRequest{
		{FirstName: "Ann", LastName: "Smith"},
		{FirstName: " Bob ", LastName: " Jones "},
	}

	tests := []struct {
		name       string
		passengers int
		supplied   []request.AdditionalPassengerRequest
		wantErr    bool
		wantCount  int
	}{
		{"three passengers, two entries", 3, two, false, 2},
		{"three passengers, one entry", 3, two[:1], true, 0},
		{"three passengers, three entries", 3, append(append([]request.AdditionalPassengerRequest{}, two...), request.AdditionalPassengerRequest{FirstName: "Cara", LastName: "Lee"}), true, 0},
		{"incomplete entry dropped then mismatch", 3, []request.AdditionalPassengerRequest{{FirstName: "Ann", LastName: "Smith"}, {FirstName: "NoLast"}}, true, 0},
		{"single passenger discards entries", 1, two, false, 0},
		{"no list supplied", 3, nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReservationRepo()
			svc := newTestReservationService(repo, newFakeAddOnRepo())

			req := validCreateRequest()
			req.Passengers = tt.passengers
			req.AdditionalPassengers = tt.supplied

			resp, err := svc.CreateReservation(context.Background(), req)

			if tt.wantErr {
				var validationErr *apperr.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("CreateReservation() error = %v, want ValidationError", err)
				}
				if validationErr.Message != "passenger detail count mismatch" {
					t.Errorf("message = %q, want %q", validationErr.Message, "passenger detail count mismatch")
				}
				if repo.createCalls != 0 {
					t.Errorf("createCalls = %d, want 0", repo.createCalls)
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateReservation() error = %v", err)
			}
			if len(resp.AdditionalPassengers) != tt.wantCount {
				t.Errorf("len(AdditionalPassengers) = %d, want %d", len(resp.AdditionalPassengers), tt.wantCount)
			}
		})
	}
}

func TestCreateReservationTrimsPassengerNames(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo())

	req := validCreateRequest()
	req.Passengers = 2
	req.AdditionalPassengers = []request.AdditionalPassengerRequest{
		{FirstName: "  Ann ", LastName: " Smith  "},
	}

	resp, err := svc.CreateReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}
	if resp.AdditionalPassengers[0].FirstName != "Ann" || resp.AdditionalPassengers[0].LastName != "Smith" {
		t.Errorf("passenger = %+v, want trimmed Ann Smith", resp.AdditionalPassengers[0])
	}
}

func TestCreateReservationAggregatesAddOns(t *testing.T) {
	addOn := &entity.AddOn{ID: uuid.New(), Name: "Child seat", Price: 15, IsActive: true}
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo(addOn))

	req := validCreateRequest()
	req.TotalPrice = 100
	req.AddOns = []request.AddOnSelectionRequest{
		{AddOnID: addOn.ID.String(), Quantity: 2},
		{AddOnID: uuid.NewString(), Quantity: 1}, // unknown, silently dropped
	}

	resp, err := svc.CreateReservation(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	if len(resp.AddOns) != 1 {
		t.Fatalf("len(AddOns) = %d, want 1", len(resp.AddOns))
	}
	if resp.AddOns[0].LineTotal != 30 {
		t.Errorf("LineTotal = %v, want 30", resp.AddOns[0].LineTotal)
	}
	if resp.AddOnsTotal != 30 {
		t.Errorf("AddOnsTotal = %v, want 30", resp.AddOnsTotal)
	}
	if resp.TotalPrice.Amount != 130 {
		t.Errorf("TotalPrice = %v, want 130 (base 100 + addons 30)", resp.TotalPrice.Amount)
	}
	if resp.TotalPrice.Currency != "EUR" {
		t.Errorf("Currency = %v, want EUR", resp.TotalPrice.Currency)
	}
}

func TestCreateReservationPickupDatetime(t *testing.T) {
	tests := []struct {
		name     string
		datetime *string
		date     *string
		timeOfDy *string
		want     *string // RFC3339 or nil
	}{
		{"explicit iso wins", strPtr("2026-07-01T14:30:00Z"), strPtr("2026-08-01"), strPtr("09:00"), strPtr("2026-07-01T14:30:00Z")},
		{"date plus time", nil, strPtr("2026-08-01"), strPtr("09:00"), strPtr("2026-08-01T09:00:00Z")},
		{"date defaults midnight", nil, strPtr("2026-08-01"), nil, strPtr("2026-08-01T00:00:00Z")},
		{"neither stays unset", nil, nil, nil, nil},
		{"unparsable resolves unset", strPtr("tomorrow-ish"), nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReservationRepo()
			svc := newTestReservationService(repo, newFakeAddOnRepo())

			req := validCreateRequest()
			req.PickupDatetime = tt.datetime
			req.PickupDate = tt.date
			req.PickupTime = tt.timeOfDy

			resp, err := svc.CreateReservation(context.Background(), req)
			if err != nil {
				t.Fatalf("CreateReservation() error = %v", err)
			}

			if tt.want == nil {
				if resp.PickupAt != nil {
					t.Errorf("PickupAt = %v, want nil", *resp.PickupAt)
				}
				return
			}

			if resp.PickupAt == nil {
				t.Fatalf("PickupAt = nil, want %v", *tt.want)
			}

			got, err := time.Parse(time.RFC3339, *resp.PickupAt)
			if err != nil {
				t.Fatalf("PickupAt %q is not RFC3339: %v", *resp.PickupAt, err)
			}
			want, _ := time.Parse(time.RFC3339, *tt.want)
			if !got.Equal(want) {
				t.Errorf("PickupAt = %v, want %v", got, want)
			}
		})
	}
}

func TestCreateReservationRejectsVehicleAndTour(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo())

	req := validCreateRequest()
	req.VehicleID = strPtr(uuid.NewString())
	req.TourID = strPtr(uuid.NewString())

	_, err := svc.CreateReservation(context.Background(), req)

	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("CreateReservation() error = %v, want ValidationError", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", repo.createCalls)
	}
}

func TestCreateReservationStartsPending(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo())

	resp, err := svc.CreateReservation(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}
	if resp.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("PaymentStatus = %v, want PENDING", resp.PaymentStatus)
	}
	if resp.ID == 0 {
		t.Error("ID = 0, want repository-assigned id")
	}
	if resp.CreatedAt == "" {
		t.Error("CreatedAt empty, want RFC3339 timestamp")
	}
}

func TestUpdatePaymentStatusTransitions(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo())

	created, err := svc.CreateReservation(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	resp, err := svc.UpdatePaymentStatus(context.Background(), created.ID, entity.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("UpdatePaymentStatus() error = %v", err)
	}
	if resp.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %v, want PAID", resp.PaymentStatus)
	}

	// Resolved reservations are terminal
	_, err = svc.UpdatePaymentStatus(context.Background(), created.ID, entity.PaymentStatusFailed)
	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("second UpdatePaymentStatus() error = %v, want ValidationError", err)
	}
}

func TestUpdatePaymentStatusRejectsPending(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := newTestReservationService(repo, newFakeAddOnRepo())

	created, err := svc.CreateReservation(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	_, err = svc.UpdatePaymentStatus(context.Background(), created.ID, entity.PaymentStatusPending)
	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("UpdatePaymentStatus(PENDING) error = %v, want ValidationError", err)
	}
}

func TestUpdatePaymentStatusNotFound(t *testing.T) {
	svc := newTestReservationService(newFakeReservationRepo(), newFakeAddOnRepo())

	_, err := svc.UpdatePaymentStatus(context.Background(), 999, entity.PaymentStatusPaid)

	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("UpdatePaymentStatus() error = %v, want NotFoundError", err)
	}
}
