package player

import "time"

// User is the account aggregate: identity plus the mutable MWT ledger
// shared by the activity, breeding and order resolvers.
type User struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	WalletAddress string     `json:"wallet_address,omitempty"`
	GameLevel     int        `json:"game_level"`
	MWTBalance    float64    `json:"mwt_balance"`
	CatsOwned     int        `json:"cats_owned"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	Version       int64      `json:"version"`
}

func NewUser(id, username, email, passwordHash, walletAddress string, startingBalance float64, now time.Time) User {
	return User{
		ID:            id,
		Username:      username,
		Email:         email,
		PasswordHash:  passwordHash,
		WalletAddress: walletAddress,
		GameLevel:     1,
		MWTBalance:    startingBalance,
		CatsOwned:     0,
		CreatedAt:     now,
		LastLogin:     &now,
		Version:       1,
	}
}
