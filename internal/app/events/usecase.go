package events

import (
	"context"
	"errors"
	"strings"

	"meowtopia/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid event request")

const defaultHistoryLimit = 50

// HistoryUseCase lists a player's recent activity feed, newest first.
type HistoryUseCase struct {
	Events ports.EventRepository
}

func (u HistoryUseCase) Execute(ctx context.Context, actorID string, limit int) ([]ports.EventRecord, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, ErrInvalidRequest
	}
	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}
	records, err := u.Events.ListRecent(ctx, actorID, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []ports.EventRecord{}
	}
	return records, nil
}
