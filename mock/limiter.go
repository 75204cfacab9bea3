package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagesum.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
