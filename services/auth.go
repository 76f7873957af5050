package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"leximax/db"
	"leximax/models"
	"leximax/utils"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultAvatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed="

// AuthService signs users up and in, recording each login against the
// streak and issuing a JWT.
type AuthService struct {
	users       db.UserStore
	identity    IdentityProvider
	progression *ProgressionService
	now         func() time.Time
}

func NewAuthService(users db.UserStore, identity IdentityProvider, progression *ProgressionService) *AuthService {
	if identity == nil {
		identity = LocalIdentityProvider{}
	}
	return &AuthService{users: users, identity: identity, progression: progression, now: time.Now}
}

var authService *AuthService

func InitAuthService(users db.UserStore, identity IdentityProvider, progression *ProgressionService) *AuthService {
	authService = NewAuthService(users, identity, progression)
	return authService
}

func GetAuthService() *AuthService {
	return authService
}

// Session is returned by SignUp and Login.
type Session struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

func (s *AuthService) SignUp(ctx context.Context, username, email, password, avatar string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		username = utils.ExtractNameFromEmail(email)
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, models.ErrEmailInUse
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.identity.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(primitive.NewObjectID().Hex(), username, email, avatar, s.now())
	if user.Avatar == "" {
		user.Avatar = AvatarURL(user)
	}
	user.PasswordHash = hash
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user": user.ID, "email": email}).Info("User signed up")

	return s.startSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.identity.Authenticate(ctx, user, password); err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) startSession(ctx context.Context, user *models.User) (*Session, error) {
	updated, err := s.progression.RecordLogin(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	if updated != nil {
		user = updated
	}
	token, err := utils.GenerateJWTToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &Session{AccessToken: token, User: user}, nil
}

// AvatarURL returns the user's avatar or a generated one seeded by name.
func AvatarURL(user *models.User) string {
	if user.Avatar != "" {
		return user.Avatar
	}
	return defaultAvatarURL + url.QueryEscape(user.Username)
}
