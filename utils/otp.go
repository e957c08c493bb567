package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/go-redis/redis/v8"
)

// OTPStore keeps one-time codes keyed by phone number. Codes are single
// use and are consumed on successful verification. Entries never expire;
// that mirrors the historical behavior and is a known gap.
type OTPStore interface {
	Put(ctx context.Context, phone, code string) error
	Verify(ctx context.Context, phone, code string) error
}

// GenerateOTP returns a random 4-digit code in the range 1000-9999.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}

// MemoryOTPStore is the in-process store used by default and in tests.
type MemoryOTPStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{codes: make(map[string]string)}
}

func (s *MemoryOTPStore) Put(ctx context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = code
	return nil
}

func (s *MemoryOTPStore) Verify(ctx context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.codes[phone]
	if !ok || stored != code {
		return ErrInvalidOTP
	}
	delete(s.codes, phone)
	return nil
}

// RedisOTPStore keeps codes in Redis so they survive restarts.
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func otpKey(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

func (s *RedisOTPStore) Put(ctx context.Context, phone, code string) error {
	// TTL 0 keeps parity with the memory store: codes live until consumed.
	return s.client.Set(ctx, otpKey(phone), code, 0).Err()
}

func (s *RedisOTPStore) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.client.Get(ctx, otpKey(phone)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrInvalidOTP
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if stored != code {
		return ErrInvalidOTP
	}
	if err := s.client.Del(ctx, otpKey(phone)).Err(); err != nil {
		GetLogger().Sugar().Errorf("Failed to delete OTP after verification: %v", err)
	}
	return nil
}
