package recommendation

import (
	"github.com/armora/quote/internal/recommendation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("recommendation",
	fx.Provide(service.NewResolver),
)
