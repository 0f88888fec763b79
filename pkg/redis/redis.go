// Package redis wraps the go-redis client used for rate-limit state and
// session storage.
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"casamento/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

const (
	// DefaultPoolSize is the connection pool size per instance.
	DefaultPoolSize = 100
	// DefaultTimeout bounds individual operations.
	DefaultTimeout = 5 * time.Second
	// DefaultMinIdleConns keeps a few connections warm.
	DefaultMinIdleConns = 10
	// DefaultMaxRetries for transient failures.
	DefaultMaxRetries = 3
	// DefaultIdleTimeout closes idle connections.
	DefaultIdleTimeout = 5 * time.Minute
)

// Instance names a logical redis database.
type Instance string

const (
	MainDB    Instance = "main"     // rate limiting and general use
	SessionDB Instance = "sessions" // auth sessions
)

// Client wraps a redis connection with operation timeouts.
type Client struct {
	Client  *redis.Client
	Context context.Context
}

// Config carries connection parameters for one instance.
type Config struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	Timeout      time.Duration
}

// Manager holds the named instances.
type manager struct {
	instances map[Instance]*Client
	mutex     sync.RWMutex
}

var (
	once    sync.Once
	mgr     *manager
	// Redis is the main instance, kept as a package variable for the common
	// case (limiter store).
	Redis *Client
)

// InitRedis connects the main and session instances. Safe to call once.
func InitRedis(address, username, password string, mainDB, sessionDB int) {
	once.Do(func() {
		mgr = &manager{instances: make(map[Instance]*Client)}

		base := Config{
			Address:      address,
			Username:     username,
			Password:     password,
			PoolSize:     DefaultPoolSize,
			MinIdleConns: DefaultMinIdleConns,
			Timeout:      DefaultTimeout,
		}

		mainConfig := base
		mainConfig.DB = mainDB
		mgr.instances[MainDB] = NewClient(mainConfig)

		sessionConfig := base
		sessionConfig.DB = sessionDB
		mgr.instances[SessionDB] = NewClient(sessionConfig)

		Redis = mgr.instances[MainDB]
	})
}

// NewClient connects a single redis client and pings it.
func NewClient(config Config) *Client {
	rds := &Client{
		Context: context.Background(),
	}

	rds.Client = redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,

		PoolTimeout:     config.Timeout,
		ConnMaxIdleTime: DefaultIdleTimeout,
		ConnMaxLifetime: 24 * time.Hour,

		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	if err := rds.Ping(); err != nil {
		panic(fmt.Sprintf("redis: connection failed: %v", err))
	}

	return rds
}

// GetRedis returns a named instance, falling back to the main one.
func GetRedis(instance Instance) *Client {
	mgr.mutex.RLock()
	defer mgr.mutex.RUnlock()

	if client, ok := mgr.instances[instance]; ok {
		return client
	}
	return Redis
}

// Ping checks the connection.
func (rds *Client) Ping() error {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	_, err := rds.Client.Ping(ctx).Result()
	return err
}

// Set stores a key with an expiration. Returns false on failure.
func (rds *Client) Set(key string, value interface{}, expiration time.Duration) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Set(ctx, key, value, expiration).Err(); err != nil {
		logger.ErrorString("Redis", "Set", err.Error())
		return false
	}
	return true
}

// Get reads a key, returning "" when absent.
func (rds *Client) Get(key string) string {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	result, err := rds.Client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.ErrorString("Redis", "Get", err.Error())
		}
		return ""
	}
	return result
}

// Has reports whether a key exists.
func (rds *Client) Has(key string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	n, err := rds.Client.Exists(ctx, key).Result()
	if err != nil {
		logger.ErrorString("Redis", "Has", err.Error())
		return false
	}
	return n > 0
}

// Del removes keys. Returns false on failure.
func (rds *Client) Del(keys ...string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Del(ctx, keys...).Err(); err != nil {
		logger.ErrorString("Redis", "Del", err.Error())
		return false
	}
	return true
}

// Expire refreshes a key's TTL.
func (rds *Client) Expire(key string, ttl time.Duration) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Expire(ctx, key, ttl).Err(); err != nil {
		logger.ErrorString("Redis", "Expire", err.Error())
		return false
	}
	return true
}
