// Package domain models the tier match quiz: questions whose options vote for
// catalog tiers, and the per-session state machine that scores them.
package domain

import "github.com/bwmarrin/snowflake"

type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseScoring        Phase = "scoring"
	PhaseResult         Phase = "result"
)

// Option is one answer to a question. Choosing it adds a point to every tier
// in Tiers.
type Option struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Tiers []string `json:"tiers"`
}

type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Quiz is a validated question bank. ScoreTable holds the tier ids in
// declaration order, which is also the tie-break order.
type Quiz struct {
	Questions  []Question `json:"questions"`
	ScoreTable []string   `json:"score_table"`
}

type TierScore struct {
	TierID  string   `json:"tier_id"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// State is the progress of one quiz attempt. QuestionIndex is only
// meaningful while Phase is PhaseAwaitingAnswer.
type State struct {
	Phase         Phase       `json:"phase"`
	QuestionIndex int         `json:"question_index"`
	Scores        []TierScore `json:"scores"`
}

type Result struct {
	TierID     string      `json:"tier_id"`
	MatchScore int         `json:"match_score"`
	Reasons    []string    `json:"reasons,omitempty"`
	Ranking    []TierScore `json:"ranking"`
}

// Session is a single user's quiz attempt. It is owned by one caller and is
// not safe for concurrent use.
type Session struct {
	ID     snowflake.ID `json:"id"`
	State  State        `json:"state"`
	Result *Result      `json:"result,omitempty"`
}
