package models

import "errors"

// Domain errors shared by stores, services and controllers.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("quiz session not found")
	ErrSessionFinished    = errors.New("quiz session already finished")
	ErrEmptyPrompt        = errors.New("prompt must not be empty")
	ErrEmptyAnswer        = errors.New("answer must not be empty")
	ErrModuleNotFound     = errors.New("module not found")
	ErrMaximNotFound      = errors.New("maxim not found")
	ErrGeneratorDisabled  = errors.New("text generator not configured")
)
