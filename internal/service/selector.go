package service

import (
	"trivia-api/internal/domain"
)

// SelectQuizQuestion picks uniformly among the pool questions not listed in
// previous. intn must return a value in [0, n).
func SelectQuizQuestion(pool []*domain.Question, previous []int64, intn func(n int) int) (*domain.Question, error) {
	if len(pool) == 0 {
		return nil, domain.ErrEmptyQuizPool
	}

	served := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		served[id] = struct{}{}
	}

	eligible := make([]*domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := served[q.ID]; !ok {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil, domain.ErrQuizExhausted
	}

	return eligible[intn(len(eligible))], nil
}
