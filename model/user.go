package model

import "time"

// User is a registered API consumer. Anonymous callers are treated as
// free-tier users without a record.
type User struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Email             string    `json:"email" bson:"email"`
	Name              string    `json:"name" bson:"name"`
	Tier              Tier      `json:"subscription_tier" bson:"subscription_tier"`
	APIKey            string    `json:"api_key" bson:"api_key"`
	DailyEmailEnabled bool      `json:"daily_email_enabled" bson:"daily_email_enabled"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// EmailSubscribeRequest is the body of POST /api/emails/subscribe.
type EmailSubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Transaction records a payment intent created through the checkout stub.
type Transaction struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Tier      Tier      `json:"tier" bson:"tier"`
	Amount    float64   `json:"amount" bson:"amount"`
	Currency  string    `json:"currency" bson:"currency"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CheckoutRequest is the body of POST /api/payments/checkout.
type CheckoutRequest struct {
	Tier   Tier   `json:"tier" binding:"required"`
	Yearly bool   `json:"yearly"`
	Email  string `json:"email"`
}
