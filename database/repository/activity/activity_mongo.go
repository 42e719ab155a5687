package activityRepo

import (
	"context"
	"fmt"
	"time"

	"azura/database"
	"azura/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

// ActivityRepository is the append-only audit log. Entries are never read
// back by the engine.
type ActivityRepository interface {
	Append(ctx context.Context, entry *models.ActivityLog) error
}

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

func NewMongoActivityRepo() *MongoActivityRepo {
	return &MongoActivityRepo{coll: database.DB().Collection("activity_log")}
}

func (repo *MongoActivityRepo) Append(ctx context.Context, entry *models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append activity log entry: %w", err)
	}
	return nil
}
