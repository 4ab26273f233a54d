package service

import (
	"strings"

	"trivia-api/internal/domain"
)

// MatchQuestions keeps the questions whose text contains term, ignoring case.
// Input order is preserved.
func MatchQuestions(term string, questions []*domain.Question) []*domain.Question {
	needle := strings.ToLower(term)
	matches := make([]*domain.Question, 0)
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}
