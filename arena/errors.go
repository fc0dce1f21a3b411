package arena

import "errors"

var (
	ErrPrimaryWindow = errors.New("primary window")
	ErrPlayer        = errors.New("player")
	ErrNotStarted    = errors.New("simulation not started")
	ErrInvalidConfig = errors.New("invalid config")
)
