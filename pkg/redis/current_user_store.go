package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNoCurrentUser is returned when a session has no current-user selection
var ErrNoCurrentUser = errors.New("no current user selected")

// CurrentUserStore persists the simulated current-user selection per session.
// It stands in for real authentication: the stored value is a public user id,
// not a credential.
type CurrentUserStore struct {
	ttl time.Duration
}

var (
	setValue = Set
	getValue = Get
	delValue = Del
)

// NewCurrentUserStore creates a store whose selections expire after ttl
func NewCurrentUserStore(ttl time.Duration) *CurrentUserStore {
	return &CurrentUserStore{ttl: ttl}
}

// SetCurrentUser records the selected user for a session
func (s *CurrentUserStore) SetCurrentUser(ctx context.Context, sessionID string, userID int64) error {
	return setValue(ctx, "current_user:"+sessionID, strconv.FormatInt(userID, 10), s.ttl)
}

// GetCurrentUser returns the selected user for a session
func (s *CurrentUserStore) GetCurrentUser(ctx context.Context, sessionID string) (int64, error) {
	raw, err := getValue(ctx, "current_user:"+sessionID)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, ErrNoCurrentUser
		}
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// ClearCurrentUser drops the selection for a session
func (s *CurrentUserStore) ClearCurrentUser(ctx context.Context, sessionID string) error {
	return delValue(ctx, "current_user:"+sessionID)
}
