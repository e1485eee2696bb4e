package redis

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	onlineSetKey  = "chat:online"
	unreadKeyPref = "chat:unread:"
)

var (
	sAddValue      = SAdd
	sRemValue      = SRem
	sIsMemberValue = SIsMember
	sCardValue     = SCard
	incrValue      = Incr
	getValue       = Get
	delValue       = Del
)

// PresenceStore tracks connected chat users and per-user unread counters.
// Everything here is advisory: the database keeps the durable read state,
// Redis only makes "who is online" and badge counts cheap to answer.
type PresenceStore struct{}

// NewPresenceStore creates a new presence store
func NewPresenceStore() *PresenceStore {
	return &PresenceStore{}
}

// MarkOnline records the user as connected.
func (s *PresenceStore) MarkOnline(ctx context.Context, userID uuid.UUID) error {
	return sAddValue(ctx, onlineSetKey, userID.String())
}

// MarkOffline records the user as disconnected.
func (s *PresenceStore) MarkOffline(ctx context.Context, userID uuid.UUID) error {
	return sRemValue(ctx, onlineSetKey, userID.String())
}

// IsOnline reports whether the user has a live connection.
func (s *PresenceStore) IsOnline(ctx context.Context, userID uuid.UUID) (bool, error) {
	return sIsMemberValue(ctx, onlineSetKey, userID.String())
}

// OnlineCount returns the number of connected users.
func (s *PresenceStore) OnlineCount(ctx context.Context) (int64, error) {
	return sCardValue(ctx, onlineSetKey)
}

// Increment bumps the user's unread counter.
func (s *PresenceStore) Increment(ctx context.Context, userID uuid.UUID) error {
	_, err := incrValue(ctx, unreadKeyPref+userID.String())
	return err
}

// Clear resets the user's unread counter.
func (s *PresenceStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return delValue(ctx, unreadKeyPref+userID.String())
}

// Count returns the user's unread counter. A missing key is zero.
func (s *PresenceStore) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	val, err := getValue(ctx, unreadKeyPref+userID.String())
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}
