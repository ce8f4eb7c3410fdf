package darts

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid match configuration")
	ErrEmptyMatchState      = errors.New("match has no active leg")
	ErrUnknownPlayer        = errors.New("player is not part of the match")
)
