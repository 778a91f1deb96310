package repository

import (
	"context"
	"time"
)

// EnsureSchema 在启动时建表，服务不依赖外部迁移工具
func (r *Repository) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedules (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			version    INTEGER NOT NULL DEFAULT 1
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return err
	}

	return nil
}
