package settings

import (
	"context"
	"errors"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

var ErrInvalidRequest = errors.New("invalid settings request")

// GetUseCase returns the stored settings, falling back to the domain
// defaults when nothing has been saved yet.
type GetUseCase struct {
	Settings ports.SettingsRepository
}

func (u GetUseCase) Execute(ctx context.Context) (cafe.Settings, error) {
	stored, err := u.Settings.Get(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		return cafe.DefaultSettings(), nil
	}
	if err != nil {
		return cafe.Settings{}, err
	}
	return stored, nil
}

type UpdateUseCase struct {
	TxManager ports.TxManager
	Settings  ports.SettingsRepository
}

func (u UpdateUseCase) Execute(ctx context.Context, s cafe.Settings) (cafe.Settings, error) {
	if s.CafeName == "" || s.MaxCapacity <= 0 {
		return cafe.Settings{}, ErrInvalidRequest
	}
	if s.TaxRate < 0 || s.TaxRate >= 1 || s.ServiceChargeRate < 0 || s.ServiceChargeRate >= 1 {
		return cafe.Settings{}, ErrInvalidRequest
	}
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Settings.Save(txCtx, s)
	})
	if err != nil {
		return cafe.Settings{}, err
	}
	return s, nil
}
