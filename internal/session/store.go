package session

import (
	"context"
	"fmt"

	"hr-chatbot-be/internal/config"
)

// Store loads and persists sessions. Get creates a fresh session when the
// id is unknown or expired.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// NewStore picks the driver from configuration. Memory is the default;
// redis survives process restarts.
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.Session.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStore(cfg.Session.RedisURL)
	default:
		return nil, fmt.Errorf("unknown session driver: %s", cfg.Session.Driver)
	}
}
