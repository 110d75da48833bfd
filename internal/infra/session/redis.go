package session

import (
	"context"
	"log/slog"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/pkg/config"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:refresh:"
	userKeyPrefix    = "session:user:"
)

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}
	slog.Info("redis connected", "addr", cfg.Addr, "db", cfg.DB)

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

// Store tracks live refresh tokens by jti. A token not present here is
// treated as revoked even when its signature and expiry are valid.
type Store struct {
	client redis.UniversalClient
}

func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

func (s *Store) Save(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error {
	userKey := userKeyPrefix + userID.String()
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, sessionKeyPrefix+jti, userID.String(), ttl)
		p.SAdd(ctx, userKey, jti)
		p.Expire(ctx, userKey, ttl)
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to save session")
	}
	return nil
}

// Consume deletes the session and returns its owner, so a refresh token works once.
func (s *Store) Consume(ctx context.Context, jti string) (uuid.UUID, error) {
	raw, err := s.client.GetDel(ctx, sessionKeyPrefix+jti).Result()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return uuid.Nil, auth.ErrSessionExpired
		}
		return uuid.Nil, errs.Wrap(err, "failed to consume session")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "stored session is malformed")
	}
	s.client.SRem(ctx, userKeyPrefix+raw, jti)
	return userID, nil
}

// Revoke is idempotent.
func (s *Store) Revoke(ctx context.Context, jti string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+jti).Err(); err != nil {
		return errs.Wrap(err, "failed to revoke session")
	}
	return nil
}

// RevokeUser drops every refresh session the user holds.
func (s *Store) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	userKey := userKeyPrefix + userID.String()
	jtis, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return errs.Wrap(err, "failed to list user sessions")
	}

	keys := make([]string, 0, len(jtis)+1)
	for _, jti := range jtis {
		keys = append(keys, sessionKeyPrefix+jti)
	}
	keys = append(keys, userKey)
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to revoke user sessions")
	}
	slog.Info("revoked user sessions", "user_id", userID, "count", len(jtis))
	return nil
}
