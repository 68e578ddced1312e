package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Claim(t *testing.T) {
	ctx := context.Background()
	db, mockRedis := redismock.NewClientMock()
	mockRedis.MatchExpectationsInOrder(true)
	store := NewRedisStore(db)

	mockRedis.Regexp().ExpectSetNX("dailydot:webhook:evt_1", `.+`, time.Hour).SetVal(true)
	mockRedis.Regexp().ExpectSetNX("dailydot:webhook:evt_1", `.+`, time.Hour).SetVal(false)

	first, err := store.Claim(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.Claim(ctx, "evt_1", time.Hour)
	require.NoError(t, err)
	assert.False(t, second)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRedisStore_ClaimError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := NewRedisStore(db)

	mockRedis.Regexp().ExpectSetNX("dailydot:webhook:evt_2", `.+`, time.Minute).SetErr(errors.New("connection refused"))

	ok, err := store.Claim(context.Background(), "evt_2", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Release(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := NewRedisStore(db)

	mockRedis.ExpectDel("dailydot:webhook:evt_1").SetVal(1)

	require.NoError(t, store.Release(context.Background(), "evt_1"))

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRedisStore_ReleaseError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := NewRedisStore(db)

	mockRedis.ExpectDel("dailydot:webhook:evt_1").SetErr(errors.New("timeout"))

	assert.Error(t, store.Release(context.Background(), "evt_1"))
}
