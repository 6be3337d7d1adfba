package service

import (
	"errors"
	"fmt"

	"daybook/internal/repository"
)

// ErrEmptyText is returned for user text that is empty after trimming
var ErrEmptyText = errors.New("text cannot be empty")

// QuestionService handles the inbox of questions
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// Add appends a question to the inbox
func (s *QuestionService) Add(text string) error {
	if text == "" {
		return fmt.Errorf("%w: question", ErrEmptyText)
	}
	return s.questionRepo.AppendQuestion(text)
}

// List returns questions in the order they were added
func (s *QuestionService) List() ([]string, error) {
	return s.questionRepo.ListQuestions()
}
