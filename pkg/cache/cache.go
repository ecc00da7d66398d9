package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/ocr"
)

// ParsedChannel is the pub/sub channel downstream collaborators (message
// formatter, stats lookups) subscribe to.
const ParsedChannel = "slip_parsed"

// Cache stores analysis results keyed by the SHA-256 of the original image
// bytes, so re-posted screenshots skip the OCR pass entirely. Best-effort:
// every Redis failure is logged and treated as a miss.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect dials Redis and verifies the connection.
func Connect(addr string, ttl time.Duration) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// Key derives the cache key for an image payload.
func Key(img []byte) string {
	sum := sha256.Sum256(img)
	return "slip:" + hex.EncodeToString(sum[:])
}

// Get returns a cached result, or ok=false on miss or any Redis error.
func (c *Cache) Get(ctx context.Context, key string) (ocr.Result, bool) {
	if c == nil {
		return ocr.Result{}, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("cache get %s: %v", key, err)
		}
		return ocr.Result{}, false
	}
	var res ocr.Result
	if err := json.Unmarshal(data, &res); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return ocr.Result{}, false
	}
	return res, true
}

// Set stores a result with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, res ocr.Result) {
	if c == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// PublishParsed announces a successfully parsed slip on ParsedChannel.
func (c *Cache) PublishParsed(ctx context.Context, res ocr.Result) {
	if c == nil || !res.Success {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("publish encode: %v", err)
		return
	}
	if err := c.rdb.Publish(ctx, ParsedChannel, data).Err(); err != nil {
		log.Printf("publish %s: %v", ParsedChannel, err)
	}
}
