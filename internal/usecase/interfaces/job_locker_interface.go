package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=job_locker_interface.go -destination=mocks/mock_job_locker_interface.go -package=mock_interfaces

// IJobLocker guards background jobs against concurrent runs.
// Acquire returns ok=false when another run holds the lock.
type IJobLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}
