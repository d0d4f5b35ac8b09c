package services

import (
	"context"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance, nil until InitTokenBlacklist runs.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a Redis-backed token blacklist.
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

func InitTokenBlacklist(redisURL string) error {
	blacklist, err := NewTokenBlacklist(redisURL)
	if err != nil {
		return err
	}
	TokenBlacklist = blacklist
	return nil
}

// BlacklistToken stores the token until its own expiry; after that Redis
// drops the key and the token is rejected by expiration anyway.
func (b *RedisTokenBlacklist) BlacklistToken(tokenString string) error {
	ttl := time.Duration(utils.JWTExpirationTime) * time.Second

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				remaining := time.Until(time.Unix(int64(exp), 0))
				if remaining <= 0 {
					return nil // already expired, nothing to store
				}
				ttl = remaining
			}
		}
	}

	ctx := context.Background()
	key := fmt.Sprintf("blacklist:%s", tokenString)
	return b.Client.Set(ctx, key, "1", ttl).Err()
}

func (b *RedisTokenBlacklist) IsBlacklisted(tokenString string) bool {
	ctx := context.Background()
	key := fmt.Sprintf("blacklist:%s", tokenString)
	exists, err := b.Client.Exists(ctx, key).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

// IsTokenBlacklisted is the nil-safe check used by the auth middleware.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}
	return TokenBlacklist.IsBlacklisted(tokenString)
}
