package cache

import (
	"context"
	"errors"
	"time"

	"booking-engine/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const verificationKeyPrefix = "verify:phone:"

// consumeScript deletes the key only when the stored code matches, so a code
// is redeemed at most once under concurrent attempts.
var consumeScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

type VerificationStore struct {
	rdb redis.UniversalClient
}

func NewVerificationStore(rdb redis.UniversalClient) *VerificationStore {
	return &VerificationStore{rdb: rdb}
}

func verificationKey(phone string) string {
	return verificationKeyPrefix + phone
}

// Save overwrites any earlier code for the phone.
func (s *VerificationStore) Save(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, verificationKey(phone), code, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store verification code")
	}
	return nil
}

func (s *VerificationStore) Matches(ctx context.Context, phone, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, verificationKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "failed to read verification code")
	}
	return stored == code, nil
}

func (s *VerificationStore) Consume(ctx context.Context, phone, code string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.rdb, []string{verificationKey(phone)}, code).Int()
	if err != nil {
		return false, errs.Wrap(err, "failed to consume verification code")
	}
	return n == 1, nil
}
