package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
)

// DayLogRepo persists completed and skipped days in one append-only table.
// Each kind reads back in insertion order. It satisfies spacedrep.LogStore.
// A day has at most one row; the unique index holds across processes.
type DayLogRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// CompletedDays returns completed days in the order they were appended.
func (r *DayLogRepo) CompletedDays(ctx context.Context) ([]calendar.Day, error) {
	return r.days(ctx, KindCompleted)
}

// SkippedDays returns skipped days in the order they were appended.
func (r *DayLogRepo) SkippedDays(ctx context.Context) ([]calendar.Day, error) {
	return r.days(ctx, KindSkipped)
}

// AppendCompleted records day as completed. It fails with
// spacedrep.ErrDayLogged when day already has a row.
func (r *DayLogRepo) AppendCompleted(ctx context.Context, day calendar.Day) error {
	return r.append(ctx, KindCompleted, day)
}

// AppendSkipped records day as skipped. It fails with
// spacedrep.ErrDayLogged when day already has a row.
func (r *DayLogRepo) AppendSkipped(ctx context.Context, day calendar.Day) error {
	return r.append(ctx, KindSkipped, day)
}

// Entries returns log rows matching opts in sequence order. With a Limit,
// the most recent rows are kept.
func (r *DayLogRepo) Entries(ctx context.Context, opts QueryOpts) ([]DayLogEntry, error) {
	b := builder()
	t := b.Table("day_log")
	sel := b.Select(t.C("seq"), t.C("day"), t.C("kind"), t.C("recorded_at")).From(t)

	var preds []*entsql.Predicate
	if opts.Kind != "" {
		preds = append(preds, entsql.EQ(t.C("kind"), opts.Kind))
	}
	if opts.After > 0 {
		preds = append(preds, entsql.GT(t.C("seq"), opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT(t.C("seq"), opts.Before))
	}
	if opts.From != "" {
		preds = append(preds, entsql.GTE(t.C("day"), opts.From))
	}
	if opts.To != "" {
		preds = append(preds, entsql.LTE(t.C("day"), opts.To))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel.OrderBy(entsql.Desc(t.C("seq"))).Limit(opts.Limit)
	} else {
		sel.OrderBy(t.C("seq"))
	}

	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query day log: %w", err)
	}
	defer rows.Close()

	var entries []DayLogEntry
	for rows.Next() {
		var (
			e        DayLogEntry
			recorded string
		)
		if err := rows.Scan(&e.Sequence, &e.Day, &e.Kind, &recorded); err != nil {
			return nil, fmt.Errorf("scan day log: %w", err)
		}
		at, err := time.Parse(time.RFC3339Nano, recorded)
		if err != nil {
			return nil, fmt.Errorf("day log row %d recorded_at: %w", e.Sequence, err)
		}
		e.RecordedAt = at
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day log: %w", err)
	}

	if opts.Limit > 0 {
		slices.Reverse(entries)
	}
	return entries, nil
}

// Len returns the number of logged days of either kind.
func (r *DayLogRepo) Len(ctx context.Context) (int, error) {
	return r.lenIn(ctx, r.drv)
}

func (r *DayLogRepo) lenIn(ctx context.Context, eq dialect.ExecQuerier) (int, error) {
	b := builder()
	t := b.Table("day_log")
	q, args := b.Select(entsql.Count("*")).From(t).Query()
	return queryCount(ctx, eq, q, args)
}

func (r *DayLogRepo) days(ctx context.Context, kind string) ([]calendar.Day, error) {
	entries, err := r.Entries(ctx, QueryOpts{Kind: kind})
	if err != nil {
		return nil, err
	}
	days := make([]calendar.Day, 0, len(entries))
	for _, e := range entries {
		d, err := calendar.Parse(e.Day)
		if err != nil {
			return nil, fmt.Errorf("day log row %d: %w", e.Sequence, err)
		}
		days = append(days, d)
	}
	return days, nil
}

func (r *DayLogRepo) append(ctx context.Context, kind string, day calendar.Day) error {
	return r.appendIn(ctx, r.drv, kind, day)
}

func (r *DayLogRepo) appendIn(ctx context.Context, eq dialect.ExecQuerier, kind string, day calendar.Day) error {
	seq, err := r.seq.nextIn(ctx, eq)
	if err != nil {
		return err
	}

	q, args := builder().Insert("day_log").
		Columns("seq", "day", "kind", "recorded_at").
		Values(seq, day.String(), kind, time.Now().UTC().Format(time.RFC3339Nano)).
		OnConflict(entsql.ConflictColumns("day"), entsql.DoNothing()).
		Query()
	var res sql.Result
	if err := eq.Exec(ctx, q, args, &res); err != nil {
		return fmt.Errorf("append %s day %s: %w", kind, day, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("append %s day %s: %w", kind, day, err)
	}
	if n == 0 {
		return fmt.Errorf("append %s day %s: %w", kind, day, spacedrep.ErrDayLogged)
	}
	return nil
}

// queryCount runs a single-value COUNT query.
func queryCount(ctx context.Context, eq dialect.ExecQuerier, q string, args []any) (int, error) {
	var rows entsql.Rows
	if err := eq.Query(ctx, q, args, &rows); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	defer rows.Close()

	n := 0
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan count: %w", err)
		}
	}
	return n, rows.Err()
}
