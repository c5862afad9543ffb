package gormrepo

import (
	"context"
	"encoding/json"

	"meowtopia/internal/adapter/repo/gorm/model"
	"meowtopia/internal/app/ports"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, record ports.EventRecord) error {
	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return err
	}
	row := model.Event{
		ActorID:    record.ActorID,
		Type:       record.Type,
		OccurredAt: record.OccurredAt,
		Payload:    payload,
	}
	return sessionDB(ctx, r.db).Create(&row).Error
}

func (r EventRepo) ListRecent(ctx context.Context, actorID string, limit int) ([]ports.EventRecord, error) {
	var rows []model.Event
	query := sessionDB(ctx, r.db).
		Where("actor_id = ?", actorID).
		Order("occurred_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.EventRecord, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ports.EventRecord{
			ActorID:    row.ActorID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
