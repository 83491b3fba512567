package middleware

import (
	"desapega-api/config"
	"desapega-api/pkg/log"
	"desapega-api/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	rateLimit  config.RateLimitConfig
}

func New(l log.Logger, jwtManager scope.Manager, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		rateLimit:  rateLimit,
	}
}
