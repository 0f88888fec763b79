// Package session implements opaque bearer-token sessions stored in redis.
//
// A session binds a token to a user ID with a sliding TTL. Roles are never
// stored in the session: the user row is reloaded on every request so that
// deactivation and role changes take effect immediately.
package session

import (
	"errors"
	"time"

	"casamento/pkg/redis"

	"github.com/google/uuid"
)

// ErrNotFound means the token is unknown or expired.
var ErrNotFound = errors.New("sessão não encontrada ou expirada")

const keyPrefix = "session:"

// Store persists sessions on a redis instance.
type Store struct {
	rds *redis.Client
	ttl time.Duration
}

// NewStore builds a Store over the sessions redis database.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		rds: redis.GetRedis(redis.SessionDB),
		ttl: ttl,
	}
}

// NewStoreWithClient is used by tests to inject a client.
func NewStoreWithClient(rds *redis.Client, ttl time.Duration) *Store {
	return &Store{rds: rds, ttl: ttl}
}

// Create issues a fresh token for a user.
func (s *Store) Create(userID string) (string, error) {
	token := uuid.New().String()
	if ok := s.rds.Set(keyPrefix+token, userID, s.ttl); !ok {
		return "", errors.New("falha ao criar sessão")
	}
	return token, nil
}

// Resolve returns the user ID behind a token and slides its expiration.
func (s *Store) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}
	userID := s.rds.Get(keyPrefix + token)
	if userID == "" {
		return "", ErrNotFound
	}
	s.rds.Expire(keyPrefix+token, s.ttl)
	return userID, nil
}

// Destroy removes a token. Destroying an unknown token is not an error.
func (s *Store) Destroy(token string) {
	if token == "" {
		return
	}
	s.rds.Del(keyPrefix + token)
}
