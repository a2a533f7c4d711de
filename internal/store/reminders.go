package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

func (s *Store) AddReminder(r models.Reminder) (models.Reminder, error) {
	if r.Type == "" {
		r.Type = models.ReminderOther
	}
	if !r.Type.Valid() {
		return models.Reminder{}, fmt.Errorf("%w: reminder %q", ErrInvalidType, r.Type)
	}

	err := s.update(func() error {
		id, err := s.ensureID(r.ID, func(id string) bool { return s.reminderIndex(id) >= 0 })
		if err != nil {
			return err
		}
		if r.CompanyID != "" && s.companyIndex(r.CompanyID) < 0 {
			return ErrNotFound
		}

		r.ID = id
		r.CreatedAt = s.clock()
		r.CompletedAt = cloneTime(r.CompletedAt)
		if r.Completed && r.CompletedAt == nil {
			now := r.CreatedAt
			r.CompletedAt = &now
		}
		if !r.Completed {
			r.CompletedAt = nil
		}
		s.reminders = append(s.reminders, r)
		s.recalculate()
		return nil
	}, SliceReminders, SliceStats)
	if err != nil {
		return models.Reminder{}, err
	}

	return r, nil
}

// UpdateReminder replaces company, type, date and message. Completion is
// changed through CompleteReminder and ReopenReminder.
func (s *Store) UpdateReminder(r models.Reminder) (models.Reminder, error) {
	if r.Type != "" && !r.Type.Valid() {
		return models.Reminder{}, fmt.Errorf("%w: reminder %q", ErrInvalidType, r.Type)
	}

	var out models.Reminder
	err := s.update(func() error {
		idx := s.reminderIndex(r.ID)
		if idx < 0 {
			return ErrNotFound
		}
		if r.CompanyID != "" && s.companyIndex(r.CompanyID) < 0 {
			return ErrNotFound
		}

		cur := &s.reminders[idx]
		cur.CompanyID = r.CompanyID
		if r.Type != "" {
			cur.Type = r.Type
		}
		cur.ReminderDate = r.ReminderDate
		cur.Message = r.Message
		s.recalculate()

		out = reminderOut(*cur)
		return nil
	}, SliceReminders, SliceStats)

	return out, err
}

func (s *Store) DeleteReminder(id string) error {
	return s.update(func() error {
		idx := s.reminderIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.reminders = append(s.reminders[:idx], s.reminders[idx+1:]...)
		s.recalculate()
		return nil
	}, SliceReminders, SliceStats)
}

// CompleteReminder marks the reminder done and stamps the completion time.
func (s *Store) CompleteReminder(id string) error {
	return s.update(func() error {
		idx := s.reminderIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		now := s.clock()
		s.reminders[idx].Completed = true
		s.reminders[idx].CompletedAt = &now
		s.recalculate()
		return nil
	}, SliceReminders, SliceStats)
}

func (s *Store) ReopenReminder(id string) error {
	return s.update(func() error {
		idx := s.reminderIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.reminders[idx].Completed = false
		s.reminders[idx].CompletedAt = nil
		s.recalculate()
		return nil
	}, SliceReminders, SliceStats)
}

func (s *Store) Reminder(id string) (models.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.reminderIndex(id)
	if idx < 0 {
		return models.Reminder{}, false
	}
	return reminderOut(s.reminders[idx]), true
}

// Reminders returns every reminder ordered by due date.
func (s *Store) Reminders() []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectReminders(func(models.Reminder) bool { return true })
}

// DueReminders returns the open reminders due at or before until, earliest first.
func (s *Store) DueReminders(until time.Time) []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectReminders(func(r models.Reminder) bool {
		return !r.Completed && !r.ReminderDate.After(until)
	})
}

// ReminderBuckets groups reminders by due date relative to the start of the
// current day: overdue before today, today, the following six days, and later.
// Completed reminders get their own bucket.
func (s *Store) ReminderBuckets() repository.ReminderBuckets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7)

	b := repository.ReminderBuckets{
		Overdue:   []models.Reminder{},
		Today:     []models.Reminder{},
		ThisWeek:  []models.Reminder{},
		Later:     []models.Reminder{},
		Completed: []models.Reminder{},
	}
	for _, r := range s.collectReminders(func(models.Reminder) bool { return true }) {
		switch {
		case r.Completed:
			b.Completed = append(b.Completed, r)
		case r.ReminderDate.Before(today):
			b.Overdue = append(b.Overdue, r)
		case r.ReminderDate.Before(tomorrow):
			b.Today = append(b.Today, r)
		case r.ReminderDate.Before(weekEnd):
			b.ThisWeek = append(b.ThisWeek, r)
		default:
			b.Later = append(b.Later, r)
		}
	}
	return b
}

func (s *Store) collectReminders(match func(models.Reminder) bool) []models.Reminder {
	out := []models.Reminder{}
	for _, r := range s.reminders {
		if match(r) {
			out = append(out, reminderOut(r))
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].ReminderDate.Before(out[b].ReminderDate) })
	return out
}

func (s *Store) reminderIndex(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

func reminderOut(r models.Reminder) models.Reminder {
	r.CompletedAt = cloneTime(r.CompletedAt)
	return r
}
