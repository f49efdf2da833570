package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id has expired or been revoked.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores active session ids server-side so that logout can
// revoke a session before its token expires.
type SessionRepository interface {
	Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	Get(ctx context.Context, sid string) (int64, error)
	Delete(ctx context.Context, sid string) error
}

type sessionRedisRepo struct {
	client *redis.Client
}

// NewSessionRedisRepo connects to Redis and verifies the connection before
// returning the repository.
func NewSessionRedisRepo(redisURL, password string) (SessionRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &sessionRedisRepo{client: rdb}, nil
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (r *sessionRedisRepo) Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sid), userID, ttl).Err()
}

func (r *sessionRedisRepo) Get(ctx context.Context, sid string) (int64, error) {
	val, err := r.client.Get(ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value for %s: %w", sid, err)
	}
	return userID, nil
}

func (r *sessionRedisRepo) Delete(ctx context.Context, sid string) error {
	// deleting an already-expired session is fine
	return r.client.Del(ctx, sessionKey(sid)).Err()
}
