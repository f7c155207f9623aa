package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusTyping  = "typing"

	onlineTTL = 60 * time.Second
	typingTTL = 5 * time.Second
)

// PresenceService keeps per-user status in redis. The websocket hub writes
// it; the chat-room directory reads it when rendering seller rows. Keys
// expire on their own, so a crashed connection degrades to "offline".
type PresenceService struct {
	rdb *redis.Client
}

func NewPresenceService(rdb *redis.Client) *PresenceService {
	return &PresenceService{rdb: rdb}
}

func presenceKey(userID int) string {
	return fmt.Sprintf("presence:user:%d", userID)
}

func (p *PresenceService) SetOnline(ctx context.Context, userID int) error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Set(ctx, presenceKey(userID), StatusOnline, onlineTTL).Err()
}

func (p *PresenceService) SetTyping(ctx context.Context, userID int) error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Set(ctx, presenceKey(userID), StatusTyping, typingTTL).Err()
}

func (p *PresenceService) SetOffline(ctx context.Context, userID int) error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Del(ctx, presenceKey(userID)).Err()
}

// Status never fails: an unreachable redis reads as "offline".
func (p *PresenceService) Status(ctx context.Context, userID int) string {
	if p == nil || p.rdb == nil {
		return StatusOffline
	}
	status, err := p.rdb.Get(ctx, presenceKey(userID)).Result()
	if errors.Is(err, redis.Nil) || err != nil || status == "" {
		return StatusOffline
	}
	return status
}
