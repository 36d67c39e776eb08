package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reprova/reprova/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	coll *mongo.Collection
}

// NewQuestionRepository creates a new question repository over the given collection
func NewQuestionRepository(coll *mongo.Collection) *QuestionRepository {
	return &QuestionRepository{
		coll: coll,
	}
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that never came from this store matches nothing
		return nil, domain.ErrQuestionNotFound
	}

	var question domain.Question
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// GetAll retrieves every question, or only the public ones when includePrivate is false
func (r *QuestionRepository) GetAll(ctx context.Context, includePrivate bool) ([]domain.Question, error) {
	filter := bson.M{}
	if !includePrivate {
		filter = bson.M{"pvt": false}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer cursor.Close(ctx)

	questions := []domain.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}

	return questions, nil
}

// Create inserts a new question and stores the assigned ID back on the entity
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	result, err := r.coll.InsertOne(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	question.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the question with the given ID, preserving its identity
func (r *QuestionRepository) Update(ctx context.Context, id string, question *domain.Question) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	question.ID = oid
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, question)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// Delete removes the question with the given ID
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}
