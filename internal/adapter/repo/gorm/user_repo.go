package gormrepo

import (
	"context"
	"errors"

	"meowtopia/internal/adapter/repo/gorm/model"
	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/player"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return UserRepo{db: db}
}

func (r UserRepo) GetByID(ctx context.Context, id string) (player.User, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r UserRepo) GetByEmail(ctx context.Context, email string) (player.User, error) {
	return r.getWhere(ctx, "email = ?", email)
}

func (r UserRepo) GetByUsername(ctx context.Context, username string) (player.User, error) {
	return r.getWhere(ctx, "username = ?", username)
}

func (r UserRepo) getWhere(ctx context.Context, query string, arg any) (player.User, error) {
	var m model.User
	if err := sessionDB(ctx, r.db).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return player.User{}, ports.ErrNotFound
		}
		return player.User{}, err
	}
	return userFromModel(m), nil
}

func (r UserRepo) Create(ctx context.Context, u player.User) error {
	m := userToModel(u)
	return sessionDB(ctx, r.db).Create(&m).Error
}

func (r UserRepo) SaveWithVersion(ctx context.Context, u player.User, expectedVersion int64) error {
	res := sessionDB(ctx, r.db).Model(&model.User{}).
		Where("id = ? AND version = ?", u.ID, expectedVersion).
		Updates(map[string]any{
			"username":       u.Username,
			"email":          u.Email,
			"password_hash":  u.PasswordHash,
			"wallet_address": u.WalletAddress,
			"game_level":     int32(u.GameLevel),
			"mwt_balance":    u.MWTBalance,
			"cats_owned":     int32(u.CatsOwned),
			"last_login":     u.LastLogin,
			"version":        u.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func userToModel(u player.User) model.User {
	return model.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		WalletAddress: u.WalletAddress,
		GameLevel:     int32(u.GameLevel),
		MwtBalance:    u.MWTBalance,
		CatsOwned:     int32(u.CatsOwned),
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
		Version:       u.Version,
	}
}

func userFromModel(m model.User) player.User {
	return player.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		WalletAddress: m.WalletAddress,
		GameLevel:     int(m.GameLevel),
		MWTBalance:    m.MwtBalance,
		CatsOwned:     int(m.CatsOwned),
		CreatedAt:     m.CreatedAt,
		LastLogin:     m.LastLogin,
		Version:       m.Version,
	}
}
