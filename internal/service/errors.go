package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmailAlreadyTaken   = errors.New("email already taken")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionIsNotActive      = errors.New("session is not active")

	ErrPostNotFound                    = errors.New("post not found")
	ErrUnauthorizedAccessToAnotherPost = errors.New("post belongs to another user")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
