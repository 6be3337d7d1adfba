package memory

import "sync"

// QuestionRepo implements repository.QuestionRepository
type QuestionRepo struct {
	mu        sync.RWMutex
	questions []string
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo() *QuestionRepo {
	return &QuestionRepo{}
}

func (r *QuestionRepo) AppendQuestion(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = append(r.questions, text)
	return nil
}

func (r *QuestionRepo) ListQuestions() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.questions))
	copy(out, r.questions)
	return out, nil
}
