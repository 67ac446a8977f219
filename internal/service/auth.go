package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mehlab1/Turf-Booking-POC/internal"
	"github.com/mehlab1/Turf-Booking-POC/internal/auth"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

var validate = validator.New()

// CredentialsRequest is the body shared by login and signup. Fields are
// pointers so that a present-but-empty value passes the boundary check
// and fails credential matching instead; only an absent field is a 400.
type CredentialsRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Session is the login/signup response: a token plus the public user.
type Session struct {
	Token string              `json:"token"`
	User  internal.PublicUser `json:"user"`
}

func ValidateCredentials(req *CredentialsRequest) error {
	return validate.Struct(req)
}

func Login(ctx context.Context, users storage.UserRepository, tokens auth.Provider, req *CredentialsRequest) (*Session, error) {
	user, err := users.GetByCredentials(ctx, *req.Email, *req.Password)
	if err != nil {
		return nil, err
	}
	return &Session{Token: tokens.Issue(user), User: user.Public()}, nil
}

func Signup(ctx context.Context, users storage.UserRepository, tokens auth.Provider, req *CredentialsRequest) (*Session, error) {
	user := &internal.User{
		Email:         *req.Email,
		Password:      *req.Password,
		Name:          displayName(*req.Email),
		LoyaltyPoints: 0,
		Role:          internal.RoleUser,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &Session{Token: tokens.Issue(user), User: user.Public()}, nil
}

// displayName is the local part of the email, or the whole string when
// there is no "@".
func displayName(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
