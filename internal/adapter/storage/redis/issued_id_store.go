package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// IssuedIDStore implements ports.IssuedIDStore using Redis SET NX. Keys never
// expire: a payment id stays claimed for the lifetime of the wallet.
type IssuedIDStore struct {
	client *goredis.Client
	prefix string
}

// NewIssuedIDStore creates a Redis-backed issued payment id store. Ids are
// namespaced by the wallet's primary address so several wallets can share a
// Redis database.
func NewIssuedIDStore(client *goredis.Client, wallet string) *IssuedIDStore {
	return &IssuedIDStore{
		client: client,
		prefix: "payid:" + wallet + ":",
	}
}

// Claim records paymentID. Returns true if it had not been issued before.
func (s *IssuedIDStore) Claim(ctx context.Context, paymentID string) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+paymentID, 1, goredis.SetArgs{
		Mode: "NX",
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis claim payment id: %w", err)
	}
	return result == "OK", nil
}
