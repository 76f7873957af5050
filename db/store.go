package db

import (
	"context"

	"leximax/models"
)

// UserStore is implemented by MongoUserStore, MemoryUserStore and the
// SnapshotStore decorator.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SaveUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, limit int) ([]models.User, error)
}

var (
	_ UserStore = (*MongoUserStore)(nil)
	_ UserStore = (*MemoryUserStore)(nil)
	_ UserStore = (*SnapshotStore)(nil)
)
