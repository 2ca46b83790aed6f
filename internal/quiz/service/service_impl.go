package service

import (
	"context"

	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/observability/logger"
	"github.com/armora/quote/internal/observability/metrics"
	"github.com/armora/quote/internal/quiz/domain"
	"github.com/armora/quote/pkg/telemetry/correlation"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log     *zap.Logger
	quiz    domain.Quiz
	node    *snowflake.Node
	metrics *metrics.QuizMetrics
}

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Quiz    domain.Quiz
	Node    *snowflake.Node
	Metrics *metrics.QuizMetrics `optional:"true"`
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:     p.Log.Named("quiz.service"),
		quiz:    p.Quiz,
		node:    p.Node,
		metrics: p.Metrics,
	}
}

// ProvideQuiz builds the default bank scored against the catalog's declared
// tiers.
func ProvideQuiz(catalog catalogdomain.Catalog) (domain.Quiz, error) {
	declared := catalog.Declared()
	table := make([]string, 0, len(declared))
	for _, t := range declared {
		table = append(table, t.ID)
	}
	return NewQuiz(table, DefaultQuestions())
}

func (s *Service) Quiz() domain.Quiz {
	return s.quiz
}

func (s *Service) Start(ctx context.Context) *domain.Session {
	session := &domain.Session{
		ID:    s.node.Generate(),
		State: Start(s.quiz),
	}
	s.metrics.Started()
	ctx = sessionContext(ctx, session)
	logger.WithContext(ctx, s.log).Debug("quiz session started")

	if session.State.Phase == domain.PhaseScoring {
		s.score(ctx, session)
	}
	return session
}

func (s *Service) Answer(ctx context.Context, session *domain.Session, optionID string) (*domain.Result, error) {
	if session == nil {
		return nil, domain.ErrSessionMissing
	}

	ctx = sessionContext(ctx, session)
	next, err := Answer(s.quiz, session.State, optionID)
	if err != nil {
		logger.WithContext(ctx, s.log).Debug("quiz answer rejected",
			zap.String("option_id", optionID),
			zap.Error(err),
		)
		return nil, err
	}
	session.State = next

	if next.Phase != domain.PhaseScoring {
		return nil, nil
	}
	return s.score(ctx, session), nil
}

func (s *Service) Restart(ctx context.Context, session *domain.Session) {
	if session == nil {
		return
	}
	session.State = Restart(s.quiz)
	session.Result = nil
	s.metrics.Restarted()
	logger.WithContext(sessionContext(ctx, session), s.log).Debug("quiz session restarted")
}

func (s *Service) score(ctx context.Context, session *domain.Session) *domain.Result {
	next, result, err := Score(s.quiz, session.State)
	if err != nil {
		// unreachable: callers only score in PhaseScoring
		logger.WithContext(ctx, s.log).Error("quiz scoring failed", zap.Error(err))
		return nil
	}
	session.State = next
	session.Result = &result

	s.metrics.Completed(result.TierID)
	logger.WithContext(correlation.WithTier(ctx, result.TierID), s.log).Info("quiz session scored",
		zap.Int("match_score", result.MatchScore),
	)
	return &result
}

func sessionContext(ctx context.Context, session *domain.Session) context.Context {
	return correlation.WithQuizSession(ctx, session.ID.String())
}
