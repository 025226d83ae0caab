package server

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidArgument is returned when the port argument is not an integer.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBind is returned when the listener cannot be opened on the requested port.
	ErrBind = errors.New("bind error")
)

// ParsePort resolves the listening port from the positional arguments.
// No argument yields DefaultPort.
func ParsePort(args []string) (int, error) {
	if len(args) == 0 {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: port %q is not an integer", ErrInvalidArgument, args[0])
	}
	return port, nil
}
