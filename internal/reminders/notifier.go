package reminders

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/pkg/models"
)

type delivery struct {
	due       time.Time
	delivered bool
	inFlight  bool
	attempts  int
	nextTry   time.Time
}

// Notifier polls a Source every interval and hands each reminder falling due
// within lookahead to the handler once. Reminders that leave the due set
// (completed, deleted or moved out of the window) are forgotten, and a
// reminder whose date changes is delivered again.
type Notifier struct {
	source    Source
	handler   Handler
	logger    *zap.Logger
	clock     func() time.Time
	interval  time.Duration
	lookahead time.Duration

	mu    sync.Mutex
	state map[string]*delivery

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type Option func(*Notifier)

func WithLogger(l *zap.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(n *Notifier) {
		if clock != nil {
			n.clock = clock
		}
	}
}

func NewNotifier(source Source, handler Handler, interval, lookahead time.Duration, opts ...Option) *Notifier {
	if interval <= 0 {
		interval = time.Minute
	}
	if lookahead < 0 {
		lookahead = 0
	}
	n := &Notifier{
		source:    source,
		handler:   handler,
		logger:    zap.NewNop(),
		clock:     time.Now,
		interval:  interval,
		lookahead: lookahead,
		state:     make(map[string]*delivery),
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// LogHandler returns a handler that only logs the reminder.
func LogHandler(logger *zap.Logger) Handler {
	return func(ctx context.Context, r models.Reminder) error {
		logger.Info("reminder due",
			zap.String("reminder_id", r.ID),
			zap.String("type", string(r.Type)),
			zap.String("company_id", r.CompanyID),
			zap.Time("reminder_date", r.ReminderDate),
			zap.String("message", r.Message),
		)
		return nil
	}
}

// Start launches the polling goroutine. It scans once immediately.
func (n *Notifier) Start(ctx context.Context) {
	n.wg.Add(1)
	go n.run(ctx)
}

// Stop signals the polling goroutine to stop and waits for it. It is safe to
// call more than once.
func (n *Notifier) Stop() {
	n.stopOnce.Do(func() { close(n.stop) })
	n.wg.Wait()
}

func (n *Notifier) run(ctx context.Context) {
	defer n.wg.Done()

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		if _, err := n.Scan(ctx); err != nil {
			return
		}
		select {
		case <-n.stop:
			n.logger.Info("reminder notifier stopping")
			return
		case <-ctx.Done():
			n.logger.Info("context canceled, reminder notifier exiting")
			return
		case <-ticker.C:
		}
	}
}

// Scan runs one polling pass and returns how many reminders were delivered.
// Handlers run without the notifier lock held; a reminder being handled is not
// handed out again by a concurrent Scan.
func (n *Notifier) Scan(ctx context.Context) (int, error) {
	select {
	case <-n.stop:
		return 0, ErrStopped
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	now := n.clock()
	batch := n.claim(now, n.source.DueReminders(now.Add(n.lookahead)))

	delivered := 0
	for i, r := range batch {
		if ctx.Err() != nil {
			n.unclaim(batch[i:])
			return delivered, ctx.Err()
		}

		err := n.handler(ctx, r)
		if n.settle(r, now, err) {
			delivered++
		}
	}

	return delivered, nil
}

// claim records the due set and marks the reminders that should be handled
// now as in flight. Tracked reminders missing from due are forgotten.
func (n *Notifier) claim(now time.Time, due []models.Reminder) []models.Reminder {
	n.mu.Lock()
	defer n.mu.Unlock()

	seen := make(map[string]bool, len(due))
	var batch []models.Reminder
	for _, r := range due {
		seen[r.ID] = true

		st, ok := n.state[r.ID]
		if !ok || !st.due.Equal(r.ReminderDate) {
			st = &delivery{due: r.ReminderDate}
			n.state[r.ID] = st
		}
		if st.delivered || st.inFlight {
			continue
		}
		if st.attempts > 0 && now.Before(st.nextTry) {
			continue
		}
		st.inFlight = true
		batch = append(batch, r)
	}

	for id := range n.state {
		if !seen[id] {
			delete(n.state, id)
		}
	}

	return batch
}

// settle stores the outcome of one handler call and reports whether the
// reminder counts as delivered. Outcomes for reminders that were forgotten or
// rescheduled meanwhile are dropped.
func (n *Notifier) settle(r models.Reminder, now time.Time, err error) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	st, ok := n.state[r.ID]
	if !ok || !st.due.Equal(r.ReminderDate) {
		return err == nil
	}
	st.inFlight = false

	if err != nil {
		st.attempts++
		st.nextTry = now.Add(BackoffDuration(st.attempts))
		n.logger.Warn("reminder delivery failed",
			zap.String("reminder_id", r.ID),
			zap.Int("attempts", st.attempts),
			zap.Time("next_try", st.nextTry),
			zap.Error(err),
		)
		return false
	}
	st.delivered = true
	return true
}

func (n *Notifier) unclaim(batch []models.Reminder) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, r := range batch {
		if st, ok := n.state[r.ID]; ok && st.due.Equal(r.ReminderDate) {
			st.inFlight = false
		}
	}
}

// Pending reports how many reminders are tracked but not yet delivered.
func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := 0
	for _, st := range n.state {
		if !st.delivered {
			count++
		}
	}
	return count
}
