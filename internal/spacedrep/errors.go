package spacedrep

import (
	"errors"
	"fmt"
)

// ErrCycleExhausted is returned when a forward scan runs past every cycle
// slot without finding the level. It means ReviewCycle has been corrupted.
var ErrCycleExhausted = errors.New("spacedrep: review cycle exhausted without a match")

// ErrDayLogged is returned by a LogStore asked to append a day that is
// already in either sequence. Nothing is written.
var ErrDayLogged = errors.New("spacedrep: day already logged")

// LogReadError reports a day log that could not be read. The scheduler
// treats it as an empty log; it is surfaced only through the warning sink.
type LogReadError struct {
	Sequence string // "completed" or "skipped"
	Err      error
}

func (e *LogReadError) Error() string {
	return fmt.Sprintf("read %s days: %v", e.Sequence, e.Err)
}

func (e *LogReadError) Unwrap() error { return e.Err }
