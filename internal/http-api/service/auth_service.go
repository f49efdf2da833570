package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/repository"
	"booktracker/internal/passwords"
)

var (
	ErrEmailNotAllowed    = errors.New("only addresses from an allowed email domain are accepted")
	ErrUsernameTaken      = errors.New("username is already taken, please choose another one")
	ErrEmailTaken         = errors.New("this email is already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooWeak    = errors.New("password must contain at least one uppercase letter, one lowercase letter, and one digit")
	ErrPasswordTooCommon  = errors.New("this password is too common, please try a more complex one")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// registrationErrors lists every rule violation Register can report, in rule
// order. Handlers map any of them to a 400 with the error text as the message.
var registrationErrors = []error{
	ErrEmailNotAllowed,
	ErrUsernameTaken,
	ErrEmailTaken,
	ErrPasswordTooShort,
	ErrPasswordTooWeak,
	ErrPasswordTooCommon,
	ErrPasswordMismatch,
}

// IsRegistrationError reports whether err is a registration rule violation
// rather than an infrastructure failure.
func IsRegistrationError(err error) bool {
	for _, e := range registrationErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// localPartPattern matches the local part of an already lower-cased address.
var localPartPattern = regexp.MustCompile(`^[a-z0-9._%+-]+$`)

type AuthService interface {
	Register(ctx context.Context, username, email, password, confirm string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	userRepo       repository.UserRepository
	commonList     *passwords.CommonList
	allowedDomains []string
}

func NewAuthService(userRepo repository.UserRepository, commonList *passwords.CommonList, allowedDomains []string) AuthService {
	return &authService{
		userRepo:       userRepo,
		commonList:     commonList,
		allowedDomains: allowedDomains,
	}
}

// Register validates a sign-up attempt and persists the new user. Rules run
// in a fixed order and the first violation wins; callers get exactly one
// reason per attempt.
func (s *authService) Register(ctx context.Context, username, email, password, confirm string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	// Rule 1: address shape and domain allow-list
	if !s.emailAllowed(email) {
		return nil, ErrEmailNotAllowed
	}

	// Rule 2: username not taken (case-sensitive exact match)
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	}

	// Rule 3: email not taken
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	// Rules 4-6: password policy
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if !hasRequiredClasses(password) {
		return nil, ErrPasswordTooWeak
	}
	if s.commonList.Contains(password) {
		return nil, ErrPasswordTooCommon
	}

	// Rule 7: confirmation
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	hashed, err := passwords.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsAdmin:  false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user by exact username match. Every failure collapses
// into ErrInvalidCredentials so the response never reveals which field was
// wrong.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		passwords.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return nil, ErrInvalidCredentials
	}

	if err := passwords.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) emailAllowed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}

	local, domain := email[:at], email[at+1:]
	if !localPartPattern.MatchString(local) {
		return false
	}

	for _, d := range s.allowedDomains {
		if domain == strings.ToLower(d) {
			return true
		}
	}
	return false
}

func hasRequiredClasses(password string) bool {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
