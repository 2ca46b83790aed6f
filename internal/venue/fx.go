package venue

import (
	"github.com/armora/quote/internal/venue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("venue.service",
	fx.Provide(service.NewService),
)
