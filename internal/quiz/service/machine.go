package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/armora/quote/internal/quiz/domain"
	"github.com/shopspring/decimal"
)

// NewQuiz validates a question bank against the score table. Every option
// must vote for known tiers, each at most once, so a tier can never score
// more points than there are questions.
func NewQuiz(scoreTable []string, questions []domain.Question) (domain.Quiz, error) {
	if len(scoreTable) == 0 {
		return domain.Quiz{}, fmt.Errorf("%w: empty score table", domain.ErrInvalidQuiz)
	}
	known := make(map[string]struct{}, len(scoreTable))
	for _, id := range scoreTable {
		if _, dup := known[id]; dup || strings.TrimSpace(id) == "" {
			return domain.Quiz{}, fmt.Errorf("%w: score table entry %q", domain.ErrInvalidQuiz, id)
		}
		known[id] = struct{}{}
	}

	for _, q := range questions {
		if len(q.Options) == 0 {
			return domain.Quiz{}, fmt.Errorf("%w: question %s has no options", domain.ErrInvalidQuiz, q.ID)
		}
		optionIDs := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			if _, dup := optionIDs[o.ID]; dup || o.ID == "" {
				return domain.Quiz{}, fmt.Errorf("%w: question %s option %q", domain.ErrInvalidQuiz, q.ID, o.ID)
			}
			optionIDs[o.ID] = struct{}{}

			voted := make(map[string]struct{}, len(o.Tiers))
			for _, tier := range o.Tiers {
				if _, ok := known[tier]; !ok {
					return domain.Quiz{}, fmt.Errorf("%w: option %s votes for unknown tier %q", domain.ErrInvalidQuiz, o.ID, tier)
				}
				if _, dup := voted[tier]; dup {
					return domain.Quiz{}, fmt.Errorf("%w: option %s votes twice for %q", domain.ErrInvalidQuiz, o.ID, tier)
				}
				voted[tier] = struct{}{}
			}
		}
	}

	return domain.Quiz{
		Questions:  append([]domain.Question(nil), questions...),
		ScoreTable: append([]string(nil), scoreTable...),
	}, nil
}

// Start returns the initial state: the first question with cleared scores.
// A quiz without questions goes straight to scoring.
func Start(quiz domain.Quiz) domain.State {
	scores := make([]domain.TierScore, len(quiz.ScoreTable))
	for i, id := range quiz.ScoreTable {
		scores[i] = domain.TierScore{TierID: id}
	}
	st := domain.State{Phase: domain.PhaseAwaitingAnswer, Scores: scores}
	if len(quiz.Questions) == 0 {
		st.Phase = domain.PhaseScoring
	}
	return st
}

// Restart discards all progress.
func Restart(quiz domain.Quiz) domain.State {
	return Start(quiz)
}

// CurrentQuestion returns the question awaiting an answer.
func CurrentQuestion(quiz domain.Quiz, state domain.State) (domain.Question, bool) {
	if state.Phase != domain.PhaseAwaitingAnswer || state.QuestionIndex >= len(quiz.Questions) {
		return domain.Question{}, false
	}
	return quiz.Questions[state.QuestionIndex], true
}

// Answer applies optionID to the current question and returns the next
// state. The input state is left untouched.
func Answer(quiz domain.Quiz, state domain.State, optionID string) (domain.State, error) {
	question, ok := CurrentQuestion(quiz, state)
	if !ok {
		return state, domain.ErrQuizFinished
	}
	option, ok := question.Option(optionID)
	if !ok {
		return state, fmt.Errorf("%w: %s", domain.ErrUnknownOption, optionID)
	}

	next := domain.State{
		Phase:         domain.PhaseAwaitingAnswer,
		QuestionIndex: state.QuestionIndex + 1,
		Scores:        cloneScores(state.Scores),
	}
	for _, tier := range option.Tiers {
		for i := range next.Scores {
			if next.Scores[i].TierID == tier {
				next.Scores[i].Score++
				next.Scores[i].Reasons = append(next.Scores[i].Reasons, option.Label)
				break
			}
		}
	}
	if next.QuestionIndex == len(quiz.Questions) {
		next.Phase = domain.PhaseScoring
	}
	return next, nil
}

// Score ranks tiers by score, highest first. Equal scores keep score table
// order, so the earliest declared tier wins a tie.
func Score(quiz domain.Quiz, state domain.State) (domain.State, domain.Result, error) {
	if state.Phase != domain.PhaseScoring {
		return state, domain.Result{}, domain.ErrNotScoring
	}

	ranking := cloneScores(state.Scores)
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	result := domain.Result{Ranking: ranking}
	if len(ranking) > 0 {
		top := ranking[0]
		result.TierID = top.TierID
		result.Reasons = append([]string(nil), top.Reasons...)
		result.MatchScore = matchScore(top.Score, len(quiz.Questions))
	}

	next := domain.State{
		Phase:         domain.PhaseResult,
		QuestionIndex: state.QuestionIndex,
		Scores:        cloneScores(state.Scores),
	}
	return next, result, nil
}

// matchScore is the winner's share of the questions as a whole percentage,
// rounded half-up.
func matchScore(top, questions int) int {
	if questions == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(top)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(questions))).
		Round(0)
	return int(pct.IntPart())
}

func cloneScores(in []domain.TierScore) []domain.TierScore {
	out := make([]domain.TierScore, len(in))
	for i, s := range in {
		out[i] = domain.TierScore{
			TierID:  s.TierID,
			Score:   s.Score,
			Reasons: append([]string(nil), s.Reasons...),
		}
	}
	return out
}
