package service

import (
	"context"
	"errors"
	"log"
	"time"

	"viral-daily/metrics"
	"viral-daily/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoDatabase is returned by operations that need persistence when the
// service runs without MongoDB.
var ErrNoDatabase = errors.New("database not configured")

// ErrEmailTaken is returned when registering an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// UserService manages registered API consumers. All operations degrade
// cleanly when db is nil: lookups report no user, writes report
// ErrNoDatabase.
type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	s := &UserService{}
	if db != nil {
		s.users = db.Collection("users")
		s.ensureIndexes()
	}
	return s
}

func (s *UserService) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "api_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for _, index := range indexes {
		if _, err := s.users.Indexes().CreateOne(ctx, index); err != nil {
			log.Printf("[WARN] Failed to create users index: %v", err)
		}
	}
}

// Register creates a free-tier user with a fresh API key.
func (s *UserService) Register(ctx context.Context, email, name string) (*model.User, error) {
	if s.users == nil {
		return nil, ErrNoDatabase
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Tier:      model.TierFree,
		APIKey:    "vd_" + uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("insert", "users", "error").Inc()
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	metrics.MongoOperationsTotal.WithLabelValues("insert", "users", "ok").Inc()
	return user, nil
}

// ByAPIKey resolves an API key to its user. A missing key, unknown key, or
// database problem all resolve to (nil, nil): callers treat that as an
// anonymous free-tier request rather than an error.
func (s *UserService) ByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	if s.users == nil || apiKey == "" {
		return nil, nil
	}

	var user model.User
	err := s.users.FindOne(ctx, bson.M{"api_key": apiKey}).Decode(&user)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			metrics.MongoOperationsTotal.WithLabelValues("find", "users", "error").Inc()
			log.Printf("[WARN] API key lookup failed: %v", err)
		}
		return nil, nil
	}

	metrics.MongoOperationsTotal.WithLabelValues("find", "users", "ok").Inc()
	return &user, nil
}

// SubscribeEmail enables daily-email delivery for an address, creating the
// user if needed.
func (s *UserService) SubscribeEmail(ctx context.Context, email, name string) error {
	if s.users == nil {
		return ErrNoDatabase
	}

	if name == "" {
		name = "Viral Video Fan"
	}

	update := bson.M{
		"$set": bson.M{
			"daily_email_enabled": true,
			"name":                name,
		},
		"$setOnInsert": bson.M{
			"_id":               uuid.NewString(),
			"email":             email,
			"subscription_tier": model.TierFree,
			"api_key":           "vd_" + uuid.NewString(),
			"created_at":        time.Now().UTC(),
		},
	}

	_, err := s.users.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("upsert", "users", "error").Inc()
		return err
	}

	metrics.MongoOperationsTotal.WithLabelValues("upsert", "users", "ok").Inc()
	return nil
}
