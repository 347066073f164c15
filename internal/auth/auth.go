// Package auth handles email/password accounts. Passwords are stored
// as bcrypt hashes; the plaintext never reaches the store.
package auth

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/store"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Service registers accounts and verifies logins.
type Service struct {
	accounts store.AccountRepo
}

func NewService(accounts store.AccountRepo) *Service {
	return &Service{accounts: accounts}
}

// Register creates an account. The email is lowercased before storage
// so lookups are case-insensitive.
func (s *Service) Register(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return &fault.Validation{Field: "email", Msg: "not a valid email address"}
	}
	if len(password) < MinPasswordLen {
		return &fault.Validation{Field: "password", Msg: "must be at least 6 characters"}
	}

	existing, _, err := s.accounts.ByEmail(ctx, email)
	if err != nil {
		return &fault.Persistence{Op: "lookup account", Err: err}
	}
	if existing != nil {
		return &fault.Validation{Field: "email", Msg: "already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.accounts.Create(ctx, email, string(hash)); err != nil {
		return &fault.Persistence{Op: "create account", Err: err}
	}
	return nil
}

// Login verifies the password and records the login. Unknown emails and
// wrong passwords return the same validation fault so the response does
// not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*store.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acct, hash, err := s.accounts.ByEmail(ctx, email)
	if err != nil {
		return nil, &fault.Persistence{Op: "lookup account", Err: err}
	}
	if acct == nil {
		return nil, &fault.Validation{Field: "credentials", Msg: "invalid email or password"}
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, &fault.Validation{Field: "credentials", Msg: "invalid email or password"}
	}

	if err := s.accounts.RecordLogin(ctx, email); err != nil {
		return nil, &fault.Persistence{Op: "record login", Err: err}
	}
	acct.TotalLogins++
	return acct, nil
}
