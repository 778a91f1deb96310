package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/pairduty/roster/backend/internal/dataset"
	"github.com/pairduty/roster/backend/internal/domain"
)

// GetSavedSchedule 读取持久化的排班表副本。
// 没有保存过时返回 sql.ErrNoRows，反序列化失败时返回解码错误，
// 两者都由调用方决定是否回退到模拟上游数据。
func (r *Repository) GetSavedSchedule() (*domain.Schedule, error) {
	query := `
		SELECT data FROM schedules WHERE key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var data []byte
	if err := r.dbpool.QueryRowContext(ctx, query, r.cfg.Schedule.StorageKey).Scan(&data); err != nil {
		return nil, err
	}

	schedule := &domain.Schedule{}
	if err := json.Unmarshal(data, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// SaveSchedule 把整份排班表序列化后保存到固定的存储键下。
// 相同内容重复保存只会覆盖同一行，不会产生重复数据。
func (r *Repository) SaveSchedule(schedule *domain.Schedule) error {
	data, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO schedules (key, data, updated_at, version)
		VALUES ($1, $2, NOW(), 1)
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW(), version = schedules.version + 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, r.cfg.Schedule.StorageKey, data); err != nil {
		return err
	}

	return nil
}

// LoadSchedule 优先使用已保存的副本，没有副本或数据损坏时回退到模拟上游数据。
// 回退路径只记日志，不向调用方报错，本次会话内存中的数据仍然是权威的。
func (r *Repository) LoadSchedule() (*domain.Schedule, error) {
	schedule, err := r.GetSavedSchedule()
	if err == nil {
		return schedule, nil
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		slog.Info("没有已保存的排班表，使用上游数据", "key", r.cfg.Schedule.StorageKey)
	case isDecodeError(err):
		slog.Error("已保存的排班表无法解析，回退到上游数据", "key", r.cfg.Schedule.StorageKey, "error", err)
	default:
		// 数据库本身不可用，这类错误不能吞掉
		return nil, err
	}

	return dataset.Default(), nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// ApplyAssignmentUpdate 按 ID 替换排班记录的起止时间并持久化，返回更新后的新排班表。
// 找不到对应记录时返回 domain.ErrAssignmentNotFound，不做任何写入。
func (r *Repository) ApplyAssignmentUpdate(id, newStart, newEnd string) (*domain.Schedule, error) {
	schedule, err := r.LoadSchedule()
	if err != nil {
		return nil, err
	}

	updated, matched := schedule.WithAssignmentUpdate(id, newStart, newEnd)
	if !matched {
		return nil, domain.ErrAssignmentNotFound
	}

	if err := r.SaveSchedule(updated); err != nil {
		return nil, err
	}

	return updated, nil
}
