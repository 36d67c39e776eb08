package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reprova/reprova/internal/domain"
)

// QuestionService performs CRUD operations on the question bank
type QuestionService struct {
	repo     domain.QuestionRepository
	validate *validator.Validate
}

// NewQuestionService creates a new question service
func NewQuestionService(repo domain.QuestionRepository) *QuestionService {
	return &QuestionService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetByID retrieves a question by its ID
func (s *QuestionService) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all questions, filtered to public ones unless includePrivate is set.
// The result is never nil so an empty bank renders as an empty JSON array.
func (s *QuestionService) GetAll(ctx context.Context, includePrivate bool) ([]domain.Question, error) {
	questions, err := s.repo.GetAll(ctx, includePrivate)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	return questions, nil
}

// Create parses the payload and inserts it as a new question. The storage
// layer assigns the identifier; one supplied by the client is discarded.
func (s *QuestionService) Create(ctx context.Context, payload []byte) error {
	question, err := s.parse(payload)
	if err != nil {
		return err
	}
	question.ID = primitive.NilObjectID
	return s.repo.Create(ctx, question)
}

// Update parses the payload and replaces the question with the given ID
func (s *QuestionService) Update(ctx context.Context, id string, payload []byte) error {
	if id == "" {
		return domain.ErrQuestionNotFound
	}
	question, err := s.parse(payload)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, question)
}

// Delete removes the question with the given ID
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrQuestionNotFound
	}
	return s.repo.Delete(ctx, id)
}

// parse decodes and validates a question payload
func (s *QuestionService) parse(payload []byte) (*domain.Question, error) {
	var question domain.Question
	if err := json.Unmarshal(payload, &question); err != nil {
		return nil, ErrMalformedQuestion
	}
	if err := s.validate.Struct(&question); err != nil {
		return nil, ErrMalformedQuestion
	}
	return &question, nil
}
