package app

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ticoship/rate-service/config"
	"github.com/ticoship/rate-service/internal/cache"
	"github.com/ticoship/rate-service/internal/circuitbreaker"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/geo"
	"github.com/ticoship/rate-service/internal/rate"
	"github.com/ticoship/rate-service/internal/tariff"
)

// ServiceComponents holds the tariff pipeline dependencies.
type ServiceComponents struct {
	TariffClient tariff.Client
	Breaker      *circuitbreaker.CircuitBreaker
	Cache        cache.Cache
	Calculator   *rate.Calculator
}

// InitializeServices builds the tariff client chain and the rate
// calculator: SOAP client, circuit breaker, then the read-through cache.
func InitializeServices(cfg config.Config) *ServiceComponents {
	soap := tariff.NewSOAPClient(tariff.SOAPConfig{
		URL:      cfg.Carrier.URL,
		Username: cfg.Carrier.Username,
		Password: cfg.Carrier.Password,
		Timeout:  cfg.Carrier.Timeout,
	})

	breakerCfg := circuitbreaker.Config{
		FailureThreshold: cfg.Carrier.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Carrier.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Carrier.CircuitBreakerTimeout,
		Name:             "tariff",
	}
	breaker := circuitbreaker.New(breakerCfg)

	var client tariff.Client = tariff.NewBreakerClient(soap, breaker)

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = newTariffCache(cfg.Cache)
		client = tariff.NewCachedClient(client, store)
	}

	calculator := rate.NewCalculator(client, geo.NewTableResolver())

	return &ServiceComponents{
		TariffClient: client,
		Breaker:      breaker,
		Cache:        store,
		Calculator:   calculator,
	}
}

// newTariffCache selects the cache backend from configuration.
func newTariffCache(cfg config.CacheConfig) cache.Cache {
	if strings.EqualFold(cfg.Backend, "redis") {
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis tariff cache")
		return cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL)
	}
	return cache.NewMemoryCache(cfg.Size, cfg.TTL)
}

// MethodDefaults builds the per-variant settings defaults, overlaying the
// deploy-time method configuration on the factory values.
func MethodDefaults(cfg config.MethodsConfig) func(variant string) model.Settings {
	return func(variant string) model.Settings {
		s := model.DefaultSettings(variant)
		if cfg.OriginPostcode != "" {
			s.OriginPostcode = cfg.OriginPostcode
		}
		if cfg.DefaultPostcode != "" {
			s.DefaultPostcodeEnabled = true
			s.DefaultPostcode = cfg.DefaultPostcode
		}
		if cfg.FallbackRate != "" {
			if fallback, err := decimal.NewFromString(cfg.FallbackRate); err == nil && !fallback.IsNegative() {
				s.FallbackRate = fallback
			}
		}
		s.TaxEnabled = cfg.TaxEnabled
		return s
	}
}
