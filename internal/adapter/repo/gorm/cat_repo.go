package gormrepo

import (
	"context"
	"errors"

	"meowtopia/internal/adapter/repo/gorm/model"
	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"

	"gorm.io/gorm"
)

type CatRepo struct {
	db *gorm.DB
}

func NewCatRepo(db *gorm.DB) CatRepo {
	return CatRepo{db: db}
}

func (r CatRepo) GetByID(ctx context.Context, id string) (cattery.Cat, error) {
	var m model.Cat
	if err := sessionDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cattery.Cat{}, ports.ErrNotFound
		}
		return cattery.Cat{}, err
	}
	return catFromModel(m), nil
}

func (r CatRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]cattery.Cat, error) {
	var rows []model.Cat
	err := sessionDB(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]cattery.Cat, 0, len(rows))
	for _, m := range rows {
		out = append(out, catFromModel(m))
	}
	return out, nil
}

func (r CatRepo) Create(ctx context.Context, c cattery.Cat) error {
	m := catToModel(c)
	return sessionDB(ctx, r.db).Create(&m).Error
}

func (r CatRepo) SaveWithVersion(ctx context.Context, c cattery.Cat, expectedVersion int64) error {
	res := sessionDB(ctx, r.db).Model(&model.Cat{}).
		Where("id = ? AND version = ?", c.ID, expectedVersion).
		Updates(map[string]any{
			"name":          c.Name,
			"level":         int32(c.Level),
			"experience":    int32(c.Experience),
			"energy":        int32(c.Energy),
			"max_energy":    int32(c.MaxEnergy),
			"is_available":  c.IsAvailable,
			"last_activity": c.LastActivity,
			"updated_at":    c.UpdatedAt,
			"version":       c.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func catToModel(c cattery.Cat) model.Cat {
	return model.Cat{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Name:         c.Name,
		Rarity:       string(c.Rarity),
		Breed:        c.Breed,
		Level:        int32(c.Level),
		Experience:   int32(c.Experience),
		Energy:       int32(c.Energy),
		MaxEnergy:    int32(c.MaxEnergy),
		Cuteness:     int32(c.Attributes.Cuteness),
		Playfulness:  int32(c.Attributes.Playfulness),
		Intelligence: int32(c.Attributes.Intelligence),
		IsAvailable:  c.IsAvailable,
		LastActivity: c.LastActivity,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Version:      c.Version,
	}
}

func catFromModel(m model.Cat) cattery.Cat {
	return cattery.Cat{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		Rarity:     cattery.Rarity(m.Rarity),
		Breed:      m.Breed,
		Level:      int(m.Level),
		Experience: int(m.Experience),
		Energy:     int(m.Energy),
		MaxEnergy:  int(m.MaxEnergy),
		Attributes: cattery.Attributes{
			Cuteness:     int(m.Cuteness),
			Playfulness:  int(m.Playfulness),
			Intelligence: int(m.Intelligence),
		},
		IsAvailable:  m.IsAvailable,
		LastActivity: m.LastActivity,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Version:      m.Version,
	}
}
