package store

import (
	"time"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// StatsWindow is how far ahead deadlines and reminders count as upcoming.
const StatsWindow = 7 * 24 * time.Hour

// ComputeStats derives the dashboard numbers from companies and reminders.
// Deadlines count when they fall in [now, now+StatsWindow]. Open reminders count
// when due at or before now+StatsWindow, so overdue ones are included.
func ComputeStats(companies []models.Company, reminders []models.Reminder, now time.Time) models.UserStats {
	windowEnd := now.Add(StatsWindow)
	st := models.UserStats{TotalApplications: len(companies)}

	for _, c := range companies {
		switch c.Status {
		case models.StatusThinking:
			st.Thinking++
		case models.StatusApplied:
			st.Applied++
		case models.StatusInterviewing:
			st.Interviewing++
		case models.StatusOffer:
			st.Offers++
		case models.StatusRejected:
			st.Rejected++
		}
		if c.Deadline != nil && !c.Deadline.Before(now) && !c.Deadline.After(windowEnd) {
			st.UpcomingDeadlines++
		}
	}

	for _, r := range reminders {
		if !r.Completed && !r.ReminderDate.After(windowEnd) {
			st.TasksDue++
		}
	}

	return st
}

// Stats returns the numbers computed after the last company or reminder change.
func (s *Store) Stats() models.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// RecalculateStats recomputes the stats against the current time.
func (s *Store) RecalculateStats() models.UserStats {
	var st models.UserStats
	_ = s.update(func() error {
		s.recalculate()
		st = s.stats
		return nil
	}, SliceStats)
	return st
}

func (s *Store) recalculate() {
	s.stats = ComputeStats(s.companies, s.reminders, s.clock())
}
