package ports

import "time"

// TokenIssuer mints and verifies the bearer tokens handed out at
// register/login.
type TokenIssuer interface {
	Issue(userID string, now time.Time) (token string, expiresIn time.Duration, err error)
	Verify(token string) (userID string, err error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
