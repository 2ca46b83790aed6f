package quiz

import (
	"github.com/armora/quote/internal/quiz/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quiz.service",
	fx.Provide(
		service.ProvideQuiz,
		service.NewService,
	),
)
