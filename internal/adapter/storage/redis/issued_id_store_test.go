package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuedIDStore_Claim_NewID(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewIssuedIDStore(client, "4Wallet")

	ok, err := store.Claim(context.Background(), "a1b2c3d4e5f60708")
	require.NoError(t, err)
	assert.True(t, ok, "new id should be claimable")
	assert.True(t, s.Exists("payid:4Wallet:a1b2c3d4e5f60708"))
	assert.Zero(t, s.TTL("payid:4Wallet:a1b2c3d4e5f60708"), "claimed ids never expire")
}

func TestIssuedIDStore_Claim_Collision(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewIssuedIDStore(client, "4Wallet")
	ctx := context.Background()

	ok, err := store.Claim(ctx, "a1b2c3d4e5f60708")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Claim(ctx, "a1b2c3d4e5f60708")
	require.NoError(t, err)
	assert.False(t, ok, "an issued id must not be handed out twice")
}

func TestIssuedIDStore_Claim_SeparateWallets(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	ctx := context.Background()

	ok, err := NewIssuedIDStore(client, "4WalletA").Claim(ctx, "0011223344556677")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewIssuedIDStore(client, "4WalletB").Claim(ctx, "0011223344556677")
	require.NoError(t, err)
	assert.True(t, ok, "ids are scoped per wallet")
}

func TestIssuedIDStore_Claim_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewIssuedIDStore(client, "4Wallet")
	s.Close()

	_, err := store.Claim(context.Background(), "a1b2c3d4e5f60708")
	assert.Error(t, err)
}
