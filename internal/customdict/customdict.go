// Package customdict stores user-added words in Redis so the server can
// whitelist terms (names, jargon) across restarts and replicas.
package customdict

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const key = "ejaan:custom_dict"

// CustomDict wraps a Redis client holding the shared word set.
type CustomDict struct {
	client *redis.Client
}

// New creates a CustomDict backed by the provided client.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client}
}

// Add inserts a word, stored lowercased.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("customdict: empty word")
	}
	return cd.client.SAdd(ctx, key, word).Err()
}

// Remove deletes a word.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, key, strings.ToLower(strings.TrimSpace(word))).Err()
}

// All returns every stored word.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, key).Result()
}
