package session

import (
	"context"
	"sync"
	"time"

	"shopping-cart/internal/domain"
)

// Session is a live cart addressed by the HTTP front door. Callers hold the
// session lock while operating on Cart.
type Session struct {
	sync.Mutex

	ID        string
	Cart      *domain.Cart
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, userType string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
