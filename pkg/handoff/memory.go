package handoff

import (
	"context"
	"strings"
	"sync"
	"time"

	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

// MemoryStore backs the handoff bridge with an in-process map. Single-process
// deployments only; a multi-instance deployment needs the redis backend.
type MemoryStore struct {
	mu    sync.Mutex
	forms map[string]StoredPaymentForm
	log   *zap.Logger
}

func NewMemoryStore(log *zap.Logger) *MemoryStore {
	return &MemoryStore{
		forms: make(map[string]StoredPaymentForm),
		log:   log.With(zap.String("handoff", "memory")),
	}
}

func (s *MemoryStore) Save(ctx context.Context, reservationID, token, formHTML string) bool {
	normalized := utils.DigitsOnly(reservationID)
	if normalized == "" || token == "" || formHTML == "" {
		s.log.Warn("Rejected payment form save",
			zap.String("reservation_id", reservationID),
			zap.Bool("has_token", token != ""),
			zap.Bool("has_form", formHTML != ""),
		)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.forms[keyPrefix+normalized] = StoredPaymentForm{
		Token:     token,
		FormHTML:  formHTML,
		CreatedAt: time.Now(),
	}

	// Read back to confirm the write landed
	stored, ok := s.forms[keyPrefix+normalized]
	if !ok || stored.Token != token {
		return false
	}

	return true
}

func (s *MemoryStore) Consume(ctx context.Context, reservationID string, removeAfterConsume bool) *StoredPaymentForm {
	normalized := utils.DigitsOnly(reservationID)
	if normalized == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyPrefix + normalized
	form, ok := s.forms[key]

	// Fall back to scanning prefixed keys and matching digit-normalized
	// suffixes. Tolerates representation drift such as leading zeros.
	if !ok {
		for k, v := range s.forms {
			if !strings.HasPrefix(k, keyPrefix) {
				continue
			}
			if canonicalDigits(utils.DigitsOnly(strings.TrimPrefix(k, keyPrefix))) == canonicalDigits(normalized) {
				key = k
				form = v
				ok = true
				break
			}
		}
	}

	if !ok {
		return nil
	}

	if removeAfterConsume {
		delete(s.forms, key)
	}

	return &form
}

func (s *MemoryStore) Remove(ctx context.Context, reservationID string) {
	normalized := utils.DigitsOnly(reservationID)
	if normalized == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.forms, keyPrefix+normalized)
}
