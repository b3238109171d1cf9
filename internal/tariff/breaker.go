package tariff

import (
	"context"
	"errors"

	"github.com/ticoship/rate-service/internal/circuitbreaker"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/metrics"
)

// BreakerClient wraps a Client with a circuit breaker. While the circuit
// is open every lookup fails fast with circuitbreaker.ErrCircuitOpen and
// the pipeline degrades to a zero-cost quote.
type BreakerClient struct {
	inner   Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewBreakerClient wraps inner with the given circuit breaker.
func NewBreakerClient(inner Client, breaker *circuitbreaker.CircuitBreaker) *BreakerClient {
	return &BreakerClient{inner: inner, breaker: breaker}
}

// GetTariff performs the lookup under circuit breaker protection.
func (c *BreakerClient) GetTariff(ctx context.Context, query model.TariffQuery) (model.TariffResult, error) {
	var result model.TariffResult
	err := c.breaker.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = c.inner.GetTariff(ctx, query)
		return innerErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		metrics.RecordTariffLookup(0, "circuit_open")
	}
	if err != nil {
		return model.TariffResult{}, err
	}
	return result, nil
}
