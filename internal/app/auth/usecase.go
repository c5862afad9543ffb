package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/domain/player"
)

var (
	ErrInvalidRequest     = errors.New("invalid auth request")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
)

type RegisterRequest struct {
	Username      string
	Email         string
	Password      string
	WalletAddress string
}

type LoginRequest struct {
	Email    string
	Password string
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

type RegisterUseCase struct {
	Users     ports.UserRepository
	TxManager ports.TxManager
	Hasher    ports.PasswordHasher
	Tokens    ports.TokenIssuer
	NewID     func() string
	Now       func() time.Time
}

func (u RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (TokenResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return TokenResponse{}, ErrInvalidRequest
	}
	if u.Users == nil || u.TxManager == nil || u.Hasher == nil || u.Tokens == nil {
		return TokenResponse{}, ErrInvalidRequest
	}
	now := u.now()

	hash, err := u.Hasher.Hash(req.Password)
	if err != nil {
		return TokenResponse{}, err
	}

	user := player.NewUser(u.newID(), req.Username, req.Email, hash, req.WalletAddress, cattery.StartingBalanceMWT, now)

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Users.GetByEmail(txCtx, req.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		if _, err := u.Users.GetByUsername(txCtx, req.Username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		return u.Users.Create(txCtx, user)
	})
	if err != nil {
		return TokenResponse{}, err
	}

	return issueToken(u.Tokens, user, now)
}

type LoginUseCase struct {
	Users     ports.UserRepository
	TxManager ports.TxManager
	Hasher    ports.PasswordHasher
	Tokens    ports.TokenIssuer
	Now       func() time.Time
}

func (u LoginUseCase) Execute(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" || u.Users == nil || u.TxManager == nil || u.Hasher == nil || u.Tokens == nil {
		return TokenResponse{}, ErrInvalidRequest
	}
	now := time.Now
	if u.Now != nil {
		now = u.Now
	}

	var user player.User
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := u.Users.GetByEmail(txCtx, req.Email)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		if !u.Hasher.Check(req.Password, found.PasswordHash) {
			return ErrInvalidCredentials
		}
		login := now()
		found.LastLogin = &login
		found.Version++
		if err := u.Users.SaveWithVersion(txCtx, found, found.Version-1); err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		return TokenResponse{}, err
	}

	return issueToken(u.Tokens, user, now())
}

// VerifyUseCase resolves a bearer token to the authenticated user id,
// confirming the account still exists.
type VerifyUseCase struct {
	Users  ports.UserRepository
	Tokens ports.TokenIssuer
}

func (u VerifyUseCase) Execute(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" || u.Tokens == nil || u.Users == nil {
		return "", ErrInvalidToken
	}
	userID, err := u.Tokens.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if _, err := u.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return userID, nil
}

type ProfileUseCase struct {
	Users ports.UserRepository
}

func (u ProfileUseCase) Execute(ctx context.Context, userID string) (player.User, error) {
	if strings.TrimSpace(userID) == "" || u.Users == nil {
		return player.User{}, ErrInvalidRequest
	}
	return u.Users.GetByID(ctx, userID)
}

func issueToken(issuer ports.TokenIssuer, user player.User, now time.Time) (TokenResponse, error) {
	token, ttl, err := issuer.Issue(user.ID, now)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl.Seconds()),
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}

func (u RegisterUseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return uuid.NewString()
}

func (u RegisterUseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now().UTC()
}
