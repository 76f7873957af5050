package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"leximax/models"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	snapshotKeyPrefix      = "leximax_user:"
	snapshotEmailKeyPrefix = "leximax_user_email:"
	snapshotTimeout        = 2 * time.Second
)

var RedisClient *redis.Client

// InitRedis connects the package-level client used for user snapshots.
func InitRedis(addr, password string, db int) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	return nil
}

func CloseRedis() error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Close()
}

func SnapshotKey(userID string) string {
	return snapshotKeyPrefix + userID
}

// SnapshotEmailKey indexes a snapshot by the user's email.
func SnapshotEmailKey(email string) string {
	return snapshotEmailKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// userSnapshot carries the password hash, which the public JSON form of
// models.User omits.
type userSnapshot struct {
	*models.User
	PasswordHash string `json:"passwordHash,omitempty"`
}

// SnapshotStore writes the whole user document to Redis after every
// successful create or save on the wrapped store. Snapshot writes never fail
// the caller; errors are only logged. Writes happen on the caller's
// goroutine so the last save is always the one left in Redis.
type SnapshotStore struct {
	UserStore
	client *redis.Client
}

// NewSnapshotStore wraps next. A nil client disables snapshots.
func NewSnapshotStore(next UserStore, client *redis.Client) *SnapshotStore {
	return &SnapshotStore{UserStore: next, client: client}
}

// GetUser falls back to the snapshot when the wrapped store has no such
// user, restoring it there. This lets the in-memory store survive restarts.
func (s *SnapshotStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.UserStore.GetUser(ctx, id)
	if !errors.Is(err, models.ErrUserNotFound) || s.client == nil {
		return user, err
	}
	return s.restore(ctx, id, err)
}

// GetUserByEmail resolves unknown emails through the email index, so login
// and the duplicate-email check see restored users.
func (s *SnapshotStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.UserStore.GetUserByEmail(ctx, email)
	if !errors.Is(err, models.ErrUserNotFound) || s.client == nil {
		return user, err
	}

	id, idErr := s.client.Get(ctx, SnapshotEmailKey(email)).Result()
	if idErr != nil {
		if !errors.Is(idErr, redis.Nil) {
			log.WithError(idErr).WithField("email", email).Warn("Failed to read snapshot email index")
		}
		return nil, err
	}
	return s.restore(ctx, id, err)
}

// restore copies the snapshot of id into the wrapped store. notFound is
// returned when there is nothing to restore.
func (s *SnapshotStore) restore(ctx context.Context, id string, notFound error) (*models.User, error) {
	restored, err := s.LoadSnapshot(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrUserNotFound) {
			log.WithError(err).WithField("user", id).Warn("Failed to read user snapshot")
		}
		return nil, notFound
	}
	if err := s.UserStore.SaveUser(ctx, restored); err != nil {
		return nil, err
	}
	log.WithField("user", id).Info("Restored user from snapshot")
	return restored, nil
}

func (s *SnapshotStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.UserStore.CreateUser(ctx, user); err != nil {
		return err
	}
	s.snapshot(ctx, user)
	return nil
}

func (s *SnapshotStore) SaveUser(ctx context.Context, user *models.User) error {
	if err := s.UserStore.SaveUser(ctx, user); err != nil {
		return err
	}
	s.snapshot(ctx, user)
	return nil
}

func (s *SnapshotStore) snapshot(ctx context.Context, user *models.User) {
	if s.client == nil {
		return
	}
	payload, err := json.Marshal(userSnapshot{User: user, PasswordHash: user.PasswordHash})
	if err != nil {
		log.WithError(err).WithField("user", user.ID).Warn("Failed to encode user snapshot")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotTimeout)
	defer cancel()
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, SnapshotKey(user.ID), payload, 0)
		if user.Email != "" {
			pipe.Set(ctx, SnapshotEmailKey(user.Email), user.ID, 0)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("user", user.ID).Warn("Failed to write user snapshot")
	}
}

// LoadSnapshot reads the last snapshot written for userID.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, userID string) (*models.User, error) {
	if s.client == nil {
		return nil, models.ErrUserNotFound
	}
	raw, err := s.client.Get(ctx, SnapshotKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap := userSnapshot{User: &models.User{}}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.User.PasswordHash = snap.PasswordHash
	return snap.User, nil
}
