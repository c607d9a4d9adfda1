package shared

import (
	"time"

	"spark-bytes/internal/pkg/config"
	"spark-bytes/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction is replayed after a
// serialization failure or deadlock.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}
}

func NewRetryPolicy(cfg config.Config) RetryPolicy {
	p := DefaultRetryPolicy()
	if cfg.DB.TxMaxRetries >= 0 {
		p.MaxRetries = cfg.DB.TxMaxRetries
	}
	if cfg.DB.TxRetryBase > 0 {
		p.Base = cfg.DB.TxRetryBase
	}
	return p
}
