package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyflow/ent"
	"github.com/abhisek/studyflow/ent/account"
)

// accountRepo implements AccountRepo using the ent client.
type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) Create(ctx context.Context, email, passwordHash string) error {
	_, err := r.client.Account.Create().
		SetEmail(email).
		SetPasswordHash(passwordHash).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create account %s: %w", email, err)
	}
	return nil
}

func (r *accountRepo) ByEmail(ctx context.Context, email string) (*Account, string, error) {
	a, err := r.client.Account.Query().
		Where(account.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("query account %s: %w", email, err)
	}
	return &Account{
		Email:       a.Email,
		TotalLogins: a.TotalLogins,
		CreatedAt:   a.CreatedAt,
		LastLogin:   a.LastLogin,
	}, a.PasswordHash, nil
}

func (r *accountRepo) RecordLogin(ctx context.Context, email string) error {
	n, err := r.client.Account.Update().
		Where(account.Email(email)).
		AddTotalLogins(1).
		SetLastLogin(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record login %s: %w", email, err)
	}
	if n == 0 {
		return fmt.Errorf("record login %s: no such account", email)
	}
	return nil
}
