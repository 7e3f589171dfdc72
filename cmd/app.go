package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/cards"
	"github.com/cardcycle/cardcycle/internal/config"
	"github.com/cardcycle/cardcycle/internal/reminders"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
	"github.com/cardcycle/cardcycle/internal/store"
)

// app bundles the services a command needs.
type app struct {
	cfg       *config.Config
	store     *store.Store
	days      *store.DayLogRepo
	cards     *cards.Service
	reminders *reminders.Service
	sched     *spacedrep.Scheduler
	loc       *time.Location
	weekStart time.Weekday
}

// openApp loads configuration, opens the store and builds the services.
func openApp(cmd *cobra.Command) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDefault(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	loc, _ := cfg.Location()
	weekStart, _ := cfg.WeekStartDay()

	dbPath, err := resolveDBPath(cmd, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	days := st.DayLogRepo()
	cardSvc := cards.NewService(st.CardRepo())
	sched := spacedrep.NewScheduler(days, cardSvc, calendar.SystemClock{Location: loc})
	sched.SetWarningOutput(cmd.ErrOrStderr())

	return &app{
		cfg:       cfg,
		store:     st,
		days:      days,
		cards:     cardSvc,
		reminders: reminders.NewService(st.ReminderRepo()),
		sched:     sched,
		loc:       loc,
		weekStart: weekStart,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// withApp runs fn with an open app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// parseDayArg parses an optional YYYY-MM-DD argument, defaulting to today.
func parseDayArg(a *app, args []string) (calendar.Day, error) {
	if len(args) == 0 {
		return a.sched.Today(), nil
	}
	d, err := calendar.Parse(args[0])
	if err != nil {
		return calendar.Day{}, fmt.Errorf("invalid day %q (want YYYY-MM-DD): %w", args[0], err)
	}
	return d, nil
}
