package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubRedisPinger struct {
	err error
}

func (s *stubRedisPinger) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.err)
}

type stubMongoPinger struct {
	err error
}

func (s *stubMongoPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return s.err
}

func TestProbeHealth_AllUp(t *testing.T) {
	up := &stubRedisPinger{}

	status := probeHealth(context.Background(), &stubMongoPinger{}, up, up, up)

	assert.True(t, status.Mongo)
	assert.True(t, status.ChatCtxCache)
	assert.True(t, status.AuthCache)
	assert.True(t, status.VoiceQueue)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestProbeHealth_ReportsEachRoleSeparately(t *testing.T) {
	up := &stubRedisPinger{}
	down := &stubRedisPinger{err: errors.New("connection refused")}

	status := probeHealth(context.Background(), &stubMongoPinger{err: errors.New("no reachable servers")}, up, down, up)

	assert.False(t, status.Mongo)
	assert.True(t, status.ChatCtxCache)
	assert.False(t, status.AuthCache)
	assert.True(t, status.VoiceQueue)
}
