package service

import (
	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/quiz/domain"
)

const (
	standard      = catalogdomain.TierStandard
	executive     = catalogdomain.TierExecutive
	shadow        = catalogdomain.TierShadow
	clientVehicle = catalogdomain.TierClientVehicle
)

// DefaultQuestions is the question bank served to every session.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:     "role",
			Prompt: "Which best describes why you need protection?",
			Options: []domain.Option{
				{ID: "business", Label: "Regular business travel", Tiers: []string{standard}},
				{ID: "executive", Label: "Senior executive or corporate role", Tiers: []string{executive}},
				{ID: "public", Label: "Public figure or celebrity", Tiers: []string{shadow}},
				{ID: "family", Label: "Keeping my family safe", Tiers: []string{clientVehicle, standard}},
			},
		},
		{
			ID:     "recognition",
			Prompt: "How often are you recognised in public?",
			Options: []domain.Option{
				{ID: "rarely", Label: "Rarely recognised", Tiers: []string{standard, clientVehicle}},
				{ID: "industry", Label: "Known within my industry", Tiers: []string{executive}},
				{ID: "widely", Label: "Widely recognised", Tiers: []string{shadow}},
			},
		},
		{
			ID:     "vehicle",
			Prompt: "Which vehicle arrangement suits you?",
			Options: []domain.Option{
				{ID: "provided", Label: "A provided vehicle is fine", Tiers: []string{standard}},
				{ID: "premium", Label: "Premium vehicle with a trained driver", Tiers: []string{executive}},
				{ID: "discreet", Label: "Discreet vehicle with close escort", Tiers: []string{shadow}},
				{ID: "own", Label: "Use my own vehicle", Tiers: []string{clientVehicle}},
			},
		},
		{
			ID:     "threat",
			Prompt: "Have you had unwanted attention or threats?",
			Options: []domain.Option{
				{ID: "never", Label: "Never", Tiers: []string{standard, clientVehicle}},
				{ID: "occasionally", Label: "Occasionally", Tiers: []string{executive}},
				{ID: "regularly", Label: "Regularly", Tiers: []string{shadow}},
			},
		},
		{
			ID:     "priority",
			Prompt: "What matters most on the journey?",
			Options: []domain.Option{
				{ID: "value", Label: "Good value", Tiers: []string{standard}},
				{ID: "comfort", Label: "Comfort and punctuality", Tiers: []string{executive}},
				{ID: "discretion", Label: "Discretion and maximum security", Tiers: []string{shadow}},
				{ID: "flexibility", Label: "Flexibility around my own car", Tiers: []string{clientVehicle}},
			},
		},
	}
}
