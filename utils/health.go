package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthStatus is the snapshot served on /health: the booking store plus the
// three Redis roles the engine depends on (conversation context, auth token
// cache, voice task queue).
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	ChatCtxCache bool      `json:"chatCtxCache"`
	AuthCache    bool      `json:"authCache"`
	VoiceQueue   bool      `json:"voiceQueue"`
	CheckedAt    time.Time `json:"checkedAt"`
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type mongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func probeHealth(ctx context.Context, store mongoPinger, chatCtx, auth, voiceQueue redisPinger) HealthStatus {
	return HealthStatus{
		Mongo:        store.Ping(ctx, nil) == nil,
		ChatCtxCache: chatCtx.Ping(ctx).Err() == nil,
		AuthCache:    auth.Ping(ctx).Err() == nil,
		VoiceQueue:   voiceQueue.Ping(ctx).Err() == nil,
		CheckedAt:    time.Now(),
	}
}

// StartHealthMonitor re-probes the booking store and the Redis roles once a
// minute and keeps the result in memory for the health endpoint.
func StartHealthMonitor(store *mongo.Client, chatCtx, auth, voiceQueue *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			status := probeHealth(context.Background(), store, chatCtx, auth, voiceQueue)

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
