package domain

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question storage operations
type QuestionRepository interface {
	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id string) (*Question, error)

	// GetAll retrieves every question, or only the public ones
	GetAll(ctx context.Context, includePrivate bool) ([]Question, error)

	// Create inserts a new question, assigning its ID
	Create(ctx context.Context, question *Question) error

	// Update replaces the question with the given ID
	Update(ctx context.Context, id string, question *Question) error

	// Delete removes the question with the given ID
	Delete(ctx context.Context, id string) error
}

// QuestionService defines the operations exposed to the HTTP layer
type QuestionService interface {
	GetByID(ctx context.Context, id string) (*Question, error)
	GetAll(ctx context.Context, includePrivate bool) ([]Question, error)
	Create(ctx context.Context, payload []byte) error
	Update(ctx context.Context, id string, payload []byte) error
	Delete(ctx context.Context, id string) error
}

// Question represents one entry in the question bank. Private questions are
// only visible to callers holding the access token.
type Question struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Pvt         bool               `json:"pvt" bson:"pvt"`
	Theme       string             `json:"theme,omitempty" bson:"theme,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Statement   string             `json:"statement" bson:"statement" validate:"required"`
}
