package httpclient

import (
	"time"

	"travel-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "consecutive":
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailures)
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinimumSamples)
	default:
		return circuit.NewThresholdBreaker(cfg.ConsecutiveFailures)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(time.Duration(cfg.Timeout)*time.Second, cfg.ConsecutiveFailures, nil)
	client.BreakerLookup = func(_ *circuit.HTTPClient, _ interface{}) *circuit.Breaker {
		return cb
	}

	return client
}
