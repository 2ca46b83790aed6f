package pricing

import (
	"github.com/armora/quote/internal/pricing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing.service",
	fx.Provide(
		service.NewConfigPolicy,
		service.ProvideEngine,
		service.NewService,
	),
)
