package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mehlab1/Turf-Booking-POC/internal"
)

const tokenPrefix = "mock-jwt-"

var ErrInvalidToken = errors.New("auth: invalid token")

// Provider issues and parses the demo bearer tokens. Tokens carry the
// user id and nothing else; they are not signed.
type Provider interface {
	Issue(user *internal.User) string
	Parse(token string) (int, error)
}

type MockProvider struct {
	logger internal.Logger
}

func NewMockProvider(logger internal.Logger) *MockProvider {
	return &MockProvider{logger: logger}
}

func (p *MockProvider) Issue(user *internal.User) string {
	return fmt.Sprintf("%s%d", tokenPrefix, user.ID)
}

func (p *MockProvider) Parse(token string) (int, error) {
	if !strings.HasPrefix(token, tokenPrefix) {
		return 0, ErrInvalidToken
	}
	id, err := strconv.Atoi(strings.TrimPrefix(token, tokenPrefix))
	if err != nil || id < 1 {
		p.logger.Warnf("malformed token: %s", token)
		return 0, ErrInvalidToken
	}
	return id, nil
}
