// Package models holds the FAQ entity. FAQs are plain CRUD records with no
// lifecycle; validation is the only rule they carry.
package models

import (
	"strings"

	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
)

var (
	ErrQuestionRequired = dErrors.New(dErrors.CodeValidation, "question must not be empty")
	ErrAnswerRequired   = dErrors.New(dErrors.CodeValidation, "answer must not be empty")
)

// FAQ is a frequently-asked-question entry.
type FAQ struct {
	ID        id.FAQID      `json:"id"`
	Question  string        `json:"question"`
	Answer    string        `json:"answer"`
	Category  string        `json:"category,omitempty"`
	CreatedAt id.UTCInstant `json:"created_at"`
	UpdatedAt id.UTCInstant `json:"updated_at"`
}

// FAQUpdate is a partial update: nil fields retain their prior value.
type FAQUpdate struct {
	Question *string
	Answer   *string
	Category *string
}

// NewFAQ validates and constructs a FAQ entry.
func NewFAQ(faqID id.FAQID, question, answer, category string, now id.UTCInstant) (*FAQ, error) {
	if err := validate(question, answer); err != nil {
		return nil, err
	}
	return &FAQ{
		ID:        faqID,
		Question:  question,
		Answer:    answer,
		Category:  strings.TrimSpace(category),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply merges a partial update, revalidating the result.
func (f *FAQ) Apply(update FAQUpdate, now id.UTCInstant) error {
	question := f.Question
	answer := f.Answer
	if update.Question != nil {
		question = *update.Question
	}
	if update.Answer != nil {
		answer = *update.Answer
	}
	if err := validate(question, answer); err != nil {
		return err
	}

	f.Question = question
	f.Answer = answer
	if update.Category != nil {
		f.Category = strings.TrimSpace(*update.Category)
	}
	f.UpdatedAt = now
	return nil
}

func validate(question, answer string) error {
	if strings.TrimSpace(question) == "" {
		return ErrQuestionRequired
	}
	if strings.TrimSpace(answer) == "" {
		return ErrAnswerRequired
	}
	return nil
}
