package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	defaultScriptTTL = 10 * time.Minute
)

var (
	ErrCacheDisabled = errors.New("cache disabled")
	ErrCacheMiss     = errors.New("key not found")
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

// NewCache connects to Redis at url (redis://host:port/db). A disabled cache
// accepts writes and reports every read as ErrCacheDisabled.
func NewCache(url string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

// operationContext creates a context with timeout for Redis operations
func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.Enabled() {
		return ErrCacheDisabled
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

func FieldDefinitionsKey(eventTypeID uuid.UUID) string {
	return fmt.Sprintf("event_type:%s:fields", eventTypeID)
}

func ScriptKey(scriptID uuid.UUID) string {
	return fmt.Sprintf("script:%s", scriptID)
}

func (c *Cache) CacheFieldDefinitions(eventTypeID uuid.UUID, definitions interface{}, ttl time.Duration) error {
	return c.Set(FieldDefinitionsKey(eventTypeID), definitions, ttl)
}

func (c *Cache) GetCachedFieldDefinitions(eventTypeID uuid.UUID, dest interface{}) error {
	return c.Get(FieldDefinitionsKey(eventTypeID), dest)
}

func (c *Cache) InvalidateFieldDefinitions(eventTypeID uuid.UUID) error {
	return c.Delete(FieldDefinitionsKey(eventTypeID))
}

func (c *Cache) CacheScript(scriptID uuid.UUID, script interface{}) error {
	return c.Set(ScriptKey(scriptID), script, defaultScriptTTL)
}

func (c *Cache) GetCachedScript(scriptID uuid.UUID, dest interface{}) error {
	return c.Get(ScriptKey(scriptID), dest)
}

func (c *Cache) InvalidateScript(scriptID uuid.UUID) error {
	return c.Delete(ScriptKey(scriptID))
}

// InvalidateAllScripts drops every cached script.
func (c *Cache) InvalidateAllScripts() error {
	return c.DeletePattern("script:*")
}
