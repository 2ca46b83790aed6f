package domain

import (
	"context"
	"errors"
)

type Service interface {
	Quiz() Quiz
	Start(ctx context.Context) *Session
	// Answer records optionID for the session's current question. After the
	// last question the session is scored and the result returned.
	Answer(ctx context.Context, session *Session, optionID string) (*Result, error)
	Restart(ctx context.Context, session *Session)
}

var (
	ErrQuizFinished   = errors.New("quiz_finished")
	ErrUnknownOption  = errors.New("unknown_option")
	ErrNotScoring     = errors.New("quiz_not_scoring")
	ErrInvalidQuiz    = errors.New("invalid_quiz")
	ErrSessionMissing = errors.New("quiz_session_missing")
)
