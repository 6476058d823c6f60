package session

import (
	"context"
	"time"

	"github.com/idms/employee-portal/internal/domain"
)

// Store persists server-side session records. Get returns (nil, nil) for an
// unknown id; Delete of an absent session is a no-op.
type Store interface {
	Create(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
