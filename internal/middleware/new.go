package middleware

import (
	"library-assistant/pkg/log"
	"library-assistant/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(requestsPerMin),
	}
}
