package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// cardRepo implements CardRepo with the ent SQL builder.
type cardRepo struct {
	drv *entsql.Driver
}

var cardColumns = []string{"id", "name", "level", "front", "back", "created_at", "updated_at"}

func (r *cardRepo) Create(ctx context.Context, card CardData) error {
	q, args := builder().Insert("cards").
		Columns(cardColumns...).
		Values(card.ID, card.Name, card.Level, card.Front, card.Back,
			formatTime(card.CreatedAt), formatTime(card.UpdatedAt)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	return nil
}

func (r *cardRepo) Get(ctx context.Context, id string) (*CardData, error) {
	b := builder()
	t := b.Table("cards")
	q, args := b.Select(cardColumns...).From(t).Where(entsql.EQ("id", id)).Query()

	cards, err := r.query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}
	return &cards[0], nil
}

func (r *cardRepo) ListByLevels(ctx context.Context, levels ...int) ([]CardData, error) {
	b := builder()
	t := b.Table("cards")
	sel := b.Select(cardColumns...).From(t)
	if len(levels) > 0 {
		sel.Where(entsql.In("level", intArgs(levels)...))
	}
	q, args := sel.OrderBy("created_at", "id").Query()
	return r.query(ctx, q, args)
}

func (r *cardRepo) CountByLevels(ctx context.Context, levels ...int) (int, error) {
	b := builder()
	t := b.Table("cards")
	sel := b.Select(entsql.Count("*")).From(t)
	if len(levels) > 0 {
		sel.Where(entsql.In("level", intArgs(levels)...))
	}
	q, args := sel.Query()
	n, err := queryCount(ctx, r.drv, q, args)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

func (r *cardRepo) SetLevel(ctx context.Context, id string, level int) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	q, args := builder().Update("cards").
		Set("level", level).
		Set("updated_at", formatTime(time.Now())).
		Where(entsql.EQ("id", id)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("move card %s: %w", id, err)
	}
	return nil
}

func (r *cardRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	q, args := builder().Delete("cards").Where(entsql.EQ("id", id)).Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	return nil
}

func (r *cardRepo) Names(ctx context.Context) ([]string, error) {
	b := builder()
	t := b.Table("cards")
	q, args := b.Select("name").From(t).Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query card names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan card name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *cardRepo) query(ctx context.Context, q string, args []any) ([]CardData, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []CardData
	for rows.Next() {
		var (
			c                CardData
			created, updated string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Level, &c.Front, &c.Back, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		c.CreatedAt = parseTime(created)
		c.UpdatedAt = parseTime(updated)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return cards, nil
}

func intArgs(vals []int) []any {
	args := make([]any, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return args
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
