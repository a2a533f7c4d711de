package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &models.Snapshot{
		Profile:      s.profile,
		Companies:    make([]models.Company, 0, len(s.companies)),
		Connections:  make([]models.Connection, 0, len(s.connections)),
		Links:        append([]models.Link{}, s.links...),
		Interactions: make([]models.Interaction, 0, len(s.interactions)),
		Reminders:    make([]models.Reminder, 0, len(s.reminders)),
		Notes:        append([]models.Note{}, s.notes...),
		Timeline:     append([]models.TimelineEvent{}, s.timeline...),
	}
	for _, c := range s.companies {
		snap.Companies = append(snap.Companies, s.companyOut(c))
	}
	for _, c := range s.connections {
		snap.Connections = append(snap.Connections, s.connectionOut(c))
	}
	for _, in := range s.interactions {
		in.FollowUpDate = cloneTime(in.FollowUpDate)
		snap.Interactions = append(snap.Interactions, in)
	}
	for _, r := range s.reminders {
		snap.Reminders = append(snap.Reminders, reminderOut(r))
	}
	return snap
}

// Restore replaces the whole state with snap. Links are rebuilt from snap.Links
// plus the ID lists carried on companies and connections, keeping only pairs
// whose both ends exist. Stats are recomputed. A snapshot repeating an ID within
// one collection is rejected with ErrDuplicateID and the state is left as is.
func (s *Store) Restore(snap *models.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot is nil")
	}
	if err := uniqueIDs(snap); err != nil {
		return err
	}

	return s.update(func() error {
		s.profile = snap.Profile
		s.companies = make([]models.Company, 0, len(snap.Companies))
		s.connections = make([]models.Connection, 0, len(snap.Connections))
		s.links = nil
		s.interactions = make([]models.Interaction, 0, len(snap.Interactions))
		s.reminders = make([]models.Reminder, 0, len(snap.Reminders))
		s.notes = append([]models.Note{}, snap.Notes...)
		s.timeline = append([]models.TimelineEvent{}, snap.Timeline...)

		for _, c := range snap.Companies {
			c.RequiredSkills = cloneStrings(c.RequiredSkills)
			c.Deadline = cloneTime(c.Deadline)
			c.LinkedContactIDs = nil
			s.companies = append(s.companies, c)
		}
		for _, c := range snap.Connections {
			c.LastContacted = cloneTime(c.LastContacted)
			c.LinkedApplicationIDs = nil
			s.connections = append(s.connections, c)
		}

		link := func(companyID, connectionID string) {
			if s.companyIndex(companyID) >= 0 && s.connectionIndex(connectionID) >= 0 {
				s.addLink(companyID, connectionID)
			}
		}
		for _, l := range snap.Links {
			link(l.CompanyID, l.ConnectionID)
		}
		for _, c := range snap.Companies {
			for _, cid := range c.LinkedContactIDs {
				link(c.ID, cid)
			}
		}
		for _, c := range snap.Connections {
			for _, aid := range c.LinkedApplicationIDs {
				link(aid, c.ID)
			}
		}

		for _, in := range snap.Interactions {
			in.FollowUpDate = cloneTime(in.FollowUpDate)
			s.interactions = append(s.interactions, in)
		}
		for _, r := range snap.Reminders {
			s.reminders = append(s.reminders, reminderOut(r))
		}

		s.recalculate()
		return nil
	}, SliceProfile, SliceCompanies, SliceConnections, SliceInteractions, SliceReminders, SliceNotes, SliceTimeline, SliceStats)
}

func uniqueIDs(snap *models.Snapshot) error {
	check := func(kind string, n int, id func(int) string) error {
		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			if seen[id(i)] {
				return fmt.Errorf("%w: %s %q", ErrDuplicateID, kind, id(i))
			}
			seen[id(i)] = true
		}
		return nil
	}

	if err := check("company", len(snap.Companies), func(i int) string { return snap.Companies[i].ID }); err != nil {
		return err
	}
	if err := check("connection", len(snap.Connections), func(i int) string { return snap.Connections[i].ID }); err != nil {
		return err
	}
	if err := check("interaction", len(snap.Interactions), func(i int) string { return snap.Interactions[i].ID }); err != nil {
		return err
	}
	if err := check("reminder", len(snap.Reminders), func(i int) string { return snap.Reminders[i].ID }); err != nil {
		return err
	}
	if err := check("note", len(snap.Notes), func(i int) string { return snap.Notes[i].ID }); err != nil {
		return err
	}
	return check("timeline event", len(snap.Timeline), func(i int) string { return snap.Timeline[i].ID })
}

// Empty reports whether the store holds no companies and no connections.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies) == 0 && len(s.connections) == 0
}

// Load restores the store from repo. It reports false when repo holds no snapshot.
func (s *Store) Load(ctx context.Context, repo repository.SnapshotRepo) (bool, error) {
	snap, err := repo.LoadSnapshot(ctx)
	if err != nil {
		return false, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return false, nil
	}
	if err := s.Restore(snap); err != nil {
		return false, fmt.Errorf("restore snapshot: %w", err)
	}

	s.logger.Info("store restored",
		zap.Int("companies", len(snap.Companies)),
		zap.Int("connections", len(snap.Connections)),
	)
	return true, nil
}

// Save writes the current state to repo.
func (s *Store) Save(ctx context.Context, repo repository.SnapshotRepo) error {
	snap := s.Snapshot()
	if err := repo.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.Info("store saved",
		zap.Int("companies", len(snap.Companies)),
		zap.Int("connections", len(snap.Connections)),
	)
	return nil
}
