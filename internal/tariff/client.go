// Package tariff obtains base shipping tariffs from the Correos de Costa
// Rica web service.
package tariff

import (
	"context"

	"github.com/ticoship/rate-service/internal/domain/model"
)

// Client fetches the carrier tariff for an origin/destination/weight
// tuple. Implementations are synchronous and may fail; callers degrade
// a failure to a zero-cost quote, they never surface it to the buyer.
type Client interface {
	GetTariff(ctx context.Context, query model.TariffQuery) (model.TariffResult, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, query model.TariffQuery) (model.TariffResult, error)

// GetTariff calls f.
func (f ClientFunc) GetTariff(ctx context.Context, query model.TariffQuery) (model.TariffResult, error) {
	return f(ctx, query)
}
