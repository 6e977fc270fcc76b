// Package handoff carries a payment gateway's one-time checkout form from the
// booking step to the payment page across a full navigation. The gateway
// fragment cannot be regenerated cheaply, so exactly one live copy exists per
// reservation id and consuming it removes it at most once.
package handoff

import (
	"context"
	"strings"
	"time"

	"transfer-booking/pkg/utils"
)

const keyPrefix = "payment-form-"

// StoredPaymentForm is the ephemeral payload held between the booking step
// and the payment page.
type StoredPaymentForm struct {
	Token     string    `json:"token"`
	FormHTML  string    `json:"formHtml"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the pluggable key/value bridge. Implementations must preserve the
// contract regardless of backing: write-once per id, consume-at-most-once,
// and tolerant key matching on digit-normalized ids.
//
// Save reports failure as a boolean, never an error, so a storage outage
// cannot abort the booking flow. Consume returns nil when nothing usable is
// stored. Remove is best-effort and silent when the key is absent.
type Store interface {
	Save(ctx context.Context, reservationID, token, formHTML string) bool
	Consume(ctx context.Context, reservationID string, removeAfterConsume bool) *StoredPaymentForm
	Remove(ctx context.Context, reservationID string)
}

// Key builds the storage key for a reservation id.
func Key(reservationID string) string {
	return keyPrefix + utils.DigitsOnly(reservationID)
}

// canonicalDigits reduces a digits-only id to its canonical form for the
// fallback match, so "0042" and "42" compare equal.
func canonicalDigits(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" && digits != "" {
		return "0"
	}
	return trimmed
}
