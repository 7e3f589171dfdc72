package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// reminderRepo implements ReminderRepo. Ids come from the global sequence.
type reminderRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *reminderRepo) Create(ctx context.Context, rem ReminderData) (ReminderData, error) {
	id, err := r.seq.Next(ctx)
	if err != nil {
		return ReminderData{}, err
	}
	rem.ID = id

	q, args := builder().Insert("reminders").
		Columns("id", "hour", "minute", "badge", "sound", "enabled").
		Values(rem.ID, rem.Hour, rem.Minute, rem.Badge, rem.Sound, rem.Enabled).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return ReminderData{}, fmt.Errorf("create reminder: %w", err)
	}
	return rem, nil
}

func (r *reminderRepo) List(ctx context.Context) ([]ReminderData, error) {
	b := builder()
	t := b.Table("reminders")
	q, args := b.Select("id", "hour", "minute", "badge", "sound", "enabled").
		From(t).
		OrderBy("id").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	var out []ReminderData
	for rows.Next() {
		var rem ReminderData
		if err := rows.Scan(&rem.ID, &rem.Hour, &rem.Minute, &rem.Badge, &rem.Sound, &rem.Enabled); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func (r *reminderRepo) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}
	q, args := builder().Update("reminders").
		Set("enabled", enabled).
		Where(entsql.EQ("id", id)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("update reminder %d: %w", id, err)
	}
	return nil
}

func (r *reminderRepo) Delete(ctx context.Context, id int64) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}
	q, args := builder().Delete("reminders").Where(entsql.EQ("id", id)).Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete reminder %d: %w", id, err)
	}
	return nil
}

func (r *reminderRepo) exists(ctx context.Context, id int64) error {
	b := builder()
	t := b.Table("reminders")
	q, args := b.Select(entsql.Count("*")).From(t).Where(entsql.EQ("id", id)).Query()
	n, err := queryCount(ctx, r.drv, q, args)
	if err != nil {
		return fmt.Errorf("look up reminder %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	return nil
}
