package store

import (
	"sort"
	"strings"
	"time"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

// Company list sort orders.
const (
	SortRecent  = "recent"
	SortCreated = "created"
	SortStatus  = "status"
	SortName    = "name"
)

// Connection list filters.
const (
	FilterAll             = "all"
	FilterNeedFollowUp    = "need_followup"
	FilterSameSchool      = "same_school"
	FilterHasApplications = "has_applications"
)

// FollowUpAfterDays is how many whole days may pass since the last contact
// before a connection needs a follow-up.
const FollowUpAfterDays = 14

var statusPriority = map[models.Status]int{
	models.StatusInterviewing: 0,
	models.StatusOffer:        1,
	models.StatusApplied:      2,
	models.StatusThinking:     3,
	models.StatusRejected:     4,
}

// Companies filters by status and by a case-insensitive search on name or
// role, then sorts. An empty or "all" status matches every company; an unknown
// sort falls back to SortRecent.
func (s *Store) Companies(q repository.CompanyQuery) []models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := []models.Company{}
	for _, c := range s.companies {
		if q.Status != "" && q.Status != FilterAll && string(c.Status) != q.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Role), search) {
			continue
		}
		out = append(out, s.companyOut(c))
	}

	SortCompanies(out, q.Sort)
	return out
}

// SortCompanies orders companies in place. The input is expected in creation order.
func SortCompanies(cs []models.Company, order string) {
	byRecent := func(a, b int) bool { return cs[a].UpdatedAt.After(cs[b].UpdatedAt) }

	switch order {
	case SortCreated:
		sort.SliceStable(cs, func(a, b int) bool { return cs[a].CreatedAt.Before(cs[b].CreatedAt) })
	case SortStatus:
		sort.SliceStable(cs, func(a, b int) bool {
			pa, pb := statusPriority[cs[a].Status], statusPriority[cs[b].Status]
			if pa != pb {
				return pa < pb
			}
			return byRecent(a, b)
		})
	case SortName:
		sort.SliceStable(cs, func(a, b int) bool { return strings.ToLower(cs[a].Name) < strings.ToLower(cs[b].Name) })
	default:
		sort.SliceStable(cs, byRecent)
	}
}

// Connections filters connections and sorts them by name. Search matches name,
// company or role case-insensitively.
func (s *Store) Connections(q repository.ConnectionQuery) []models.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock()
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := []models.Connection{}
	for _, c := range s.connections {
		c = s.connectionOut(c)
		switch q.Filter {
		case FilterNeedFollowUp:
			if !NeedsFollowUp(c, now) {
				continue
			}
		case FilterSameSchool:
			if !c.SameSchool {
				continue
			}
		case FilterHasApplications:
			if len(c.LinkedApplicationIDs) == 0 {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Company), search) &&
			!strings.Contains(strings.ToLower(c.Role), search) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(a, b int) bool { return strings.ToLower(out[a].Name) < strings.ToLower(out[b].Name) })
	return out
}

// NeedsFollowUp reports whether c was never contacted or was last contacted
// more than FollowUpAfterDays whole days before now.
func NeedsFollowUp(c models.Connection, now time.Time) bool {
	if c.LastContacted == nil {
		return true
	}
	return DaysSince(*c.LastContacted, now) > FollowUpAfterDays
}

// DaysSince counts whole days elapsed from t to now.
func DaysSince(t, now time.Time) int {
	return int(now.Sub(t) / (24 * time.Hour))
}
