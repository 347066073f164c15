package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/store"
)

type memAccounts struct {
	store.AccountRepo
	hashes map[string]string
	logins map[string]int
}

func newMemAccounts() *memAccounts {
	return &memAccounts{hashes: map[string]string{}, logins: map[string]int{}}
}

func (m *memAccounts) Create(ctx context.Context, email, passwordHash string) error {
	m.hashes[email] = passwordHash
	return nil
}

func (m *memAccounts) ByEmail(ctx context.Context, email string) (*store.Account, string, error) {
	hash, ok := m.hashes[email]
	if !ok {
		return nil, "", nil
	}
	return &store.Account{Email: email, TotalLogins: m.logins[email]}, hash, nil
}

func (m *memAccounts) RecordLogin(ctx context.Context, email string) error {
	m.logins[email]++
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newMemAccounts())
	ctx := context.Background()

	if err := svc.Register(ctx, "Asha@Example.Com", "secret1"); err != nil {
		t.Fatal(err)
	}

	acct, err := svc.Login(ctx, "asha@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if acct.Email != "asha@example.com" {
		t.Errorf("email = %q", acct.Email)
	}
	if acct.TotalLogins != 1 {
		t.Errorf("total logins = %d, want 1", acct.TotalLogins)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMemAccounts())
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing at sign", "ashaexample.com", "secret1"},
		{"missing tld", "asha@example", "secret1"},
		{"empty email", "", "secret1"},
		{"short password", "asha@example.com", "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v *fault.Validation
			if err := svc.Register(ctx, tt.email, tt.password); !errors.As(err, &v) {
				t.Errorf("err = %v, want validation fault", err)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := NewService(newMemAccounts())
	ctx := context.Background()

	if err := svc.Register(ctx, "asha@example.com", "secret1"); err != nil {
		t.Fatal(err)
	}
	var v *fault.Validation
	if err := svc.Register(ctx, "ASHA@example.com", "another1"); !errors.As(err, &v) {
		t.Errorf("err = %v, want validation fault", err)
	}
}

func TestLoginRejections(t *testing.T) {
	svc := NewService(newMemAccounts())
	ctx := context.Background()

	if err := svc.Register(ctx, "asha@example.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	// Unknown email and wrong password produce the same fault text.
	_, errUnknown := svc.Login(ctx, "nobody@example.com", "secret1")
	_, errWrong := svc.Login(ctx, "asha@example.com", "wrongpw")
	for _, err := range []error{errUnknown, errWrong} {
		var v *fault.Validation
		if !errors.As(err, &v) {
			t.Fatalf("err = %v, want validation fault", err)
		}
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("fault texts differ: %q vs %q", errUnknown, errWrong)
	}
}
