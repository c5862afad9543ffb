package staffing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cafe"
)

var ErrInvalidRequest = errors.New("invalid staffing request")

type HireRequest struct {
	Name       string
	Role       cafe.StaffRole
	HourlyRate float64
	Email      string
}

type HireUseCase struct {
	TxManager ports.TxManager
	Staff     ports.StaffRepository
	NewID     func() string
	Now       func() time.Time
}

func (u HireUseCase) Execute(ctx context.Context, req HireRequest) (cafe.Staff, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !req.Role.Valid() || req.HourlyRate < 0 {
		return cafe.Staff{}, ErrInvalidRequest
	}

	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	member := cafe.NewStaff(newID(), req.Name, req.Role, req.HourlyRate, req.Email, nowFn().UTC())
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.Staff.Create(txCtx, member)
	})
	if err != nil {
		return cafe.Staff{}, err
	}
	return member, nil
}

type ListRequest struct {
	Role       cafe.StaffRole
	ActiveOnly bool
}

type ListUseCase struct {
	Staff ports.StaffRepository
}

func (u ListUseCase) Execute(ctx context.Context, req ListRequest) ([]cafe.Staff, error) {
	if req.Role != "" && !req.Role.Valid() {
		return nil, ErrInvalidRequest
	}
	members, err := u.Staff.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]cafe.Staff, 0, len(members))
	for _, m := range members {
		if req.Role != "" && m.Role != req.Role {
			continue
		}
		if req.ActiveOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
