// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum time between progress messages that are not
// forced.
const logInterval = 10 * time.Second

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards some action such as
// writing generator output.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// received accumulates the number of values between log statements and
	// total accumulates the number of values overall.
	received uint64
	total    uint64
}

// New returns a new progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the provided number of values and periodically
// (every 10 seconds) logs an information message to show progress to the user
// along with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//
//	{progressAction} {numValues} {values|value} in the last {timePeriod}
//	({rate} values/s, {total} total)
func (l *Logger) LogProgress(n uint64, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.received += n
	l.total += n
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < logInterval {
		return
	}

	var rate float64
	if secs := duration.Seconds(); secs > 0 {
		rate = float64(l.received) / secs
	}
	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%0.0f values/s, "+
		"%d total)", l.progressAction, l.received,
		pickNoun(l.received, "value", "values"), duration.Seconds(), rate,
		l.total)

	l.received = 0
	l.lastLogTime = now
}

// Total returns the total number of values accumulated by the logger.
func (l *Logger) Total() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.total
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
