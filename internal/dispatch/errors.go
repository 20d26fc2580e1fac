package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoActiveChat   = errors.New("no active chat")
	ErrFileNotFound   = errors.New("file not found")
	ErrUsage          = errors.New("usage")
)

func usageErr(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}
