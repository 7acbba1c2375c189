// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Signup: create accounts
// - Login: verify credentials and mint a bearer token
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        *auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
	dbTimeout     time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		hasher:        auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		dbTimeout:     cfg.DBTimeout,
	}
}

// NormalizeEmail applies the storage normalization policy: trim surrounding
// whitespace and lowercase. Applied consistently on every read and write so
// case variants cannot create duplicate-looking accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a new account with a hashed password. The duplicate
// pre-check inside the transaction is a fast path only; the store's unique
// constraint stays authoritative and a concurrent insert still surfaces as
// common.ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByEmail(ctx, email); err == nil {
			return common.ErrorAlreadyExists
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		created, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, storeErr(err)
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns the user together
// with a freshly minted bearer token. Unknown email and wrong password are
// deliberately indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", storeErr(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}
