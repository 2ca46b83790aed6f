package catalog

import (
	"github.com/armora/quote/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog",
	fx.Provide(service.Provide),
)
