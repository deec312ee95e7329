package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoConfig holds connection settings for the Mongo-backed storage.
type MongoConfig struct {
	ConnectionURL   string        `env:"ONBOARDING_MONGODB_URL,required"`
	Database        string        `env:"ONBOARDING_MONGODB_DATABASE" envDefault:"ballers"`
	ConnectTimeout  time.Duration `env:"ONBOARDING_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"ONBOARDING_MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"ONBOARDING_MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"ONBOARDING_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"ONBOARDING_MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"ONBOARDING_MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"ONBOARDING_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"ONBOARDING_MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// ConnectMongo creates a mongo client and returns the configured database.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Database, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client.Database(cfg.Database), nil
			}
		}

		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrFailedToConnectToMongo
}

// MongoStorage implements Storage on top of a mongo database. Profiles and
// activity selections live in separate collections keyed by user id.
type MongoStorage struct {
	profiles   *mongo.Collection
	activities *mongo.Collection
}

// NewMongoStorage wraps an existing mongo database.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{
		profiles:   db.Collection("profiles"),
		activities: db.Collection("user_activities"),
	}
}

type activityDoc struct {
	UserID     string `bson:"user_id"`
	ActivityID string `bson:"activity_id"`
	SkillLevel string `bson:"skill_level"`
}

// CountActivities returns the number of activities the user has selected.
func (s *MongoStorage) CountActivities(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.activities.CountDocuments(ctx, bson.M{"user_id": userID.String()})
	if err != nil {
		return 0, fmt.Errorf("failed to count user activities: %w", err)
	}
	return count, nil
}

// SaveDisplayName upserts the user's profile document.
func (s *MongoStorage) SaveDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	_, err := s.profiles.UpdateOne(ctx,
		bson.M{"user_id": userID.String()},
		bson.M{"$set": bson.M{
			"display_name": displayName,
			"updated_at":   time.Now().UTC(),
		}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ReplaceActivities swaps the user's activity selections.
func (s *MongoStorage) ReplaceActivities(ctx context.Context, userID uuid.UUID, activities []Activity) error {
	if _, err := s.activities.DeleteMany(ctx, bson.M{"user_id": userID.String()}); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}

	docs := make([]any, 0, len(activities))
	for _, a := range activities {
		docs = append(docs, activityDoc{
			UserID:     userID.String(),
			ActivityID: a.ActivityID.String(),
			SkillLevel: string(a.SkillLevel),
		})
	}

	if len(docs) > 0 {
		if _, err := s.activities.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert activities: %w", err)
		}
	}
	return nil
}
