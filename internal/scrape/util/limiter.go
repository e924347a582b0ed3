package util

import (
	"context"
	"net/url"

	"golang.org/x/time/rate"
)

// HostLimiter paces requests per hostname. One pass hits the job site many
// times in a row; the limiter keeps that to a courtesy rate without slowing
// unrelated hosts (the notification API) behind the same budget.
type HostLimiter struct {
	m map[string]*rate.Limiter
	r rate.Limit
	b int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	if lim, ok := hl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.r, hl.b)
	hl.m[host] = lim
	return lim
}

func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(u.Host).Wait(ctx)
}
