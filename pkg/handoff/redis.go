package handoff

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"transfer-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore backs the handoff bridge with redis so the payment page can be
// served by a different instance than the one that took the booking. Entries
// expire after ttl; a checkout form older than that is stale anyway.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("handoff", "redis")),
	}
}

func (s *RedisStore) Save(ctx context.Context, reservationID, token, formHTML string) bool {
	normalized := utils.DigitsOnly(reservationID)
	if normalized == "" || token == "" || formHTML == "" {
		s.log.Warn("Rejected payment form save",
			zap.String("reservation_id", reservationID),
			zap.Bool("has_token", token != ""),
			zap.Bool("has_form", formHTML != ""),
		)
		return false
	}

	payload, err := json.Marshal(StoredPaymentForm{
		Token:     token,
		FormHTML:  formHTML,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.log.Error("Failed to marshal payment form", zap.Error(err))
		return false
	}

	key := keyPrefix + normalized
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Error("Failed to store payment form", zap.Error(err), zap.String("key", key))
		return false
	}

	// Read back to confirm the write landed
	if err := s.client.Get(ctx, key).Err(); err != nil {
		s.log.Error("Payment form write not readable", zap.Error(err), zap.String("key", key))
		return false
	}

	return true
}

func (s *RedisStore) Consume(ctx context.Context, reservationID string, removeAfterConsume bool) *StoredPaymentForm {
	normalized := utils.DigitsOnly(reservationID)
	if normalized == "" {
		return nil
	}

	key := keyPrefix + normalized
	raw, err := s.client.Get(ctx, key).Result()

	// Fall back to scanning prefixed keys and matching digit-normalized
	// suffixes, same contract as the memory backend.
	if err == redis.Nil {
		key = ""
		iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			k := iter.Val()
			if canonicalDigits(utils.DigitsOnly(strings.TrimPrefix(k, keyPrefix))) == canonicalDigits(normalized) {
				key = k
				break
			}
		}
		if err := iter.Err(); err != nil {
			s.log.Error("Failed to scan payment form keys", zap.Error(err))
			return nil
		}
		if key == "" {
			return nil
		}
		raw, err = s.client.Get(ctx, key).Result()
	}

	if err != nil {
		if err != redis.Nil {
			s.log.Error("Failed to read payment form", zap.Error(err), zap.String("key", key))
		}
		return nil
	}

	var form StoredPaymentForm
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		s.log.Warn("Unparsable payment form entry", zap.Error(err), zap.String("key", key))
		return nil
	}

	if removeAfterConsume {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			s.log.Warn("Failed to delete consumed payment form", zap.Error(err), zap.String("key", key))
		}
	}

	return &form
}

func (s *RedisStore) Remove(ctx context.Context, reservationID string) {
	normalized := utils.DigitsOnly(reservationID)
	if normalized == "" {
		return
	}

	if err := s.client.Del(ctx, keyPrefix+normalized).Err(); err != nil {
		s.log.Warn("Failed to remove payment form",
			zap.Error(err), zap.String("reservation_id", reservationID))
	}
}
