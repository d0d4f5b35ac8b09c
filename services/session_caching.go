package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

type SessionCache struct {
	client *redis.Client
}

// GlobalSessionCache is nil when Redis is unavailable; the session repo
// treats that as cache-off and reads straight from Mongo.
var GlobalSessionCache *SessionCache

func NewSessionCache(redisURL string) (*SessionCache, error) {
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

	return &SessionCache{client: client}, nil
}

func InitSessionCache(redisURL string) error {
	cache, err := NewSessionCache(redisURL)
	if err != nil {
		return err
	}
	GlobalSessionCache = cache
	return nil
}

// SetSession caches one session with a TTL matching its expiry.
func (sc *SessionCache) SetSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %v", err)
	}

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", session.SessionID)
	if err := sc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %v", err)
	}

	// Track membership so a whole user's sessions can be invalidated at once
	userKey := fmt.Sprintf("user_sessions:%s", session.UserID)
	if err := sc.client.SAdd(ctx, userKey, session.SessionID).Err(); err != nil {
		return fmt.Errorf("failed to index session for user: %v", err)
	}
	return sc.client.Expire(ctx, userKey, ttl).Err()
}

// GetSession returns a cached session, nil on a miss or when expired.
func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)

	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %v", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %v", err)
	}

	if time.Now().After(session.ExpiresAt) {
		sc.DeleteSession(sessionID)
		return nil, nil
	}

	return &session, nil
}

func (sc *SessionCache) DeleteSession(sessionID string) error {
	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)
	return sc.client.Del(ctx, key).Err()
}

// InvalidateUserSessions evicts every cached session belonging to a user.
func (sc *SessionCache) InvalidateUserSessions(userID string) error {
	ctx := context.Background()
	userKey := fmt.Sprintf("user_sessions:%s", userID)

	sessionIDs, err := sc.client.SMembers(ctx, userKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to list user sessions: %v", err)
	}

	for _, id := range sessionIDs {
		if err := sc.DeleteSession(id); err != nil {
			return err
		}
	}
	return sc.client.Del(ctx, userKey).Err()
}
