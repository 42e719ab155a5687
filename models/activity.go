package models

import "time"

// ActivityLog is an append-only audit record written alongside booking
// creation. It is never read back by the engine.
type ActivityLog struct {
	ID           string         `bson:"id" json:"id"`
	UserID       string         `bson:"user_id" json:"userId"`
	ActivityType string         `bson:"activity_type" json:"activityType"`
	ActivityData map[string]any `bson:"activity_data" json:"activityData"`
	CreatedAt    time.Time      `bson:"created_at" json:"createdAt"`
}
