package gormrepo

import (
	"context"
	"encoding/json"

	"xiuverse/internal/adapter/repo/gorm/model"
	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepo is the append-only cultivation log. Rows are never updated or
// deleted.
type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []cultivation.CultivationEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.CultivationEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.CultivationEvent{
			PlayerID:   playerID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]cultivation.CultivationEvent, error) {
	rows := []model.CultivationEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.CultivationEvent{PlayerID: playerID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]cultivation.CultivationEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, cultivation.CultivationEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
