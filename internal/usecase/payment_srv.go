package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/response"
	"transfer-booking/pkg/apperr"
	"transfer-booking/pkg/handoff"

	"go.uber.org/zap"
)

// The checkout fragment is inserted into the payment page as markup, which
// never executes embedded scripts. The renderer must re-create each of these
// elements and append them to the document after insertion.
var scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

// PaymentService bridges the gateway checkout form across the navigation to
// the payment page via the handoff store.
type PaymentService interface {
	// SavePaymentForm stores the gateway fragment for a reservation. The
	// bool reports storage success; a false return must surface as a
	// retryable "payment form unavailable" state, never abort the booking.
	SavePaymentForm(ctx context.Context, reservationID, token, formHTML string) (bool, error)

	// ConsumePaymentForm fetches the stored fragment. With consume=true the
	// entry is removed before returning; a second call yields nil.
	ConsumePaymentForm(ctx context.Context, reservationID string, consume bool) *response.PaymentFormResponse

	RemovePaymentForm(ctx context.Context, reservationID string)
}

type paymentService struct {
	repo  *repository.Repository
	store handoff.Store
	log   *zap.Logger
}

func NewPaymentService(repo *repository.Repository, store handoff.Store, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) SavePaymentForm(ctx context.Context, reservationID, token, formHTML string) (bool, error) {
	id, err := strconv.ParseInt(reservationID, 10, 64)
	if err != nil {
		return false, apperr.NewValidation("invalid reservation id %s", reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return false, apperr.NewNotFound("reservation", reservationID)
	}

	ok := s.store.Save(ctx, reservationID, token, formHTML)
	if !ok {
		s.log.Error("Failed to store payment form",
			zap.String("reservation_id", reservationID),
		)
		return false, nil
	}

	s.log.Info("Payment form stored", zap.String("reservation_id", reservationID))
	return true, nil
}

func (s *paymentService) ConsumePaymentForm(ctx context.Context, reservationID string, consume bool) *response.PaymentFormResponse {
	form := s.store.Consume(ctx, reservationID, consume)
	if form == nil {
		return nil
	}

	return &response.PaymentFormResponse{
		Token:     form.Token,
		FormHTML:  form.FormHTML,
		CreatedAt: form.CreatedAt.Format(time.RFC3339),
		Scripts:   ExtractScripts(form.FormHTML),
	}
}

func (s *paymentService) RemovePaymentForm(ctx context.Context, reservationID string) {
	s.store.Remove(ctx, reservationID)
}

// ExtractScripts returns the script elements embedded in a checkout fragment,
// in document order.
func ExtractScripts(formHTML string) []string {
	return scriptPattern.FindAllString(formHTML, -1)
}
