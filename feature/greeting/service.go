package greeting

import (
	"strconv"

	"go.uber.org/zap"
)

// Prefix is the fixed part of the greeting body.
const Prefix = "Hello, World!, port: "

// Service computes the greeting.
type Service struct {
	port   int
	logger *zap.Logger
}

// NewService creates a greeting service for the given port.
func NewService(port int, logger *zap.Logger) *Service {
	return &Service{
		port:   port,
		logger: logger,
	}
}

// Greeting returns the response body, e.g. "Hello, World!, port: 5000".
func (s *Service) Greeting() string {
	return Prefix + strconv.Itoa(s.port)
}
