package service

import (
	"context"
	"fmt"
	"time"

	"viral-daily/metrics"
	"viral-daily/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentService records checkout intents. It is a stub: no real payment
// provider is called, the transaction is stored as pending and would be
// completed by a webhook in a real deployment.
type PaymentService struct {
	transactions *mongo.Collection
	plans        *PlanService
}

func NewPaymentService(db *mongo.Database, plans *PlanService) *PaymentService {
	s := &PaymentService{plans: plans}
	if db != nil {
		s.transactions = db.Collection("transactions")
	}
	return s
}

// CreateCheckout validates the requested tier and records a pending
// transaction.
func (s *PaymentService) CreateCheckout(ctx context.Context, req model.CheckoutRequest, user *model.User) (*model.Transaction, error) {
	if s.transactions == nil {
		return nil, ErrNoDatabase
	}

	plan := s.plans.Plan(req.Tier)
	if plan.Tier != req.Tier || plan.PriceMonthly <= 0 {
		return nil, fmt.Errorf("tier %q is not purchasable", req.Tier)
	}

	amount := plan.PriceMonthly
	if req.Yearly {
		amount = plan.PriceYearly
	}

	userID := ""
	if user != nil {
		userID = user.ID
	}

	tx := &model.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Tier:      req.Tier,
		Amount:    amount,
		Currency:  "USD",
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.transactions.InsertOne(ctx, tx); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("insert", "transactions", "error").Inc()
		return nil, err
	}

	metrics.MongoOperationsTotal.WithLabelValues("insert", "transactions", "ok").Inc()
	return tx, nil
}

// Transactions lists a user's payment history, newest first.
func (s *PaymentService) Transactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	if s.transactions == nil {
		return nil, ErrNoDatabase
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(50)
	cursor, err := s.transactions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", "transactions", "error").Inc()
		return nil, err
	}

	var txs []model.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		metrics.MongoOperationsTotal.WithLabelValues("find", "transactions", "error").Inc()
		return nil, err
	}

	metrics.MongoOperationsTotal.WithLabelValues("find", "transactions", "ok").Inc()
	return txs, nil
}
