// Package fixtures seeds a store with the demo dataset shipped in
// fixtures.json. Dates in the file are day offsets from the moment of seeding,
// so deadlines and reminders stay "upcoming" whenever the app starts.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/qri-io/jsonschema"

	"github.com/garnizeh/pathfinder/internal/store"
	"github.com/garnizeh/pathfinder/pkg/models"
)

//go:embed fixtures.json
var defaultDocument []byte

//go:embed fixtures.schema.json
var schemaJSON []byte

type document struct {
	Profile      models.UserProfile `json:"profile"`
	Connections  []connection       `json:"connections"`
	Companies    []company          `json:"companies"`
	Interactions []interaction      `json:"interactions"`
	Reminders    []reminder         `json:"reminders"`
}

type connection struct {
	models.Connection
	CreatedDaysAgo int `json:"created_days_ago"`
}

type company struct {
	models.Company
	DeadlineInDays *int `json:"deadline_in_days"`
	CreatedDaysAgo int  `json:"created_days_ago"`
	History        []struct {
		Status  models.Status `json:"status"`
		DaysAgo int           `json:"days_ago"`
	} `json:"history"`
	Notes []struct {
		Content string `json:"content"`
		DaysAgo int    `json:"days_ago"`
	} `json:"notes"`
}

type interaction struct {
	models.Interaction
	DaysAgo        int  `json:"days_ago"`
	FollowUpInDays *int `json:"follow_up_in_days"`
}

type reminder struct {
	models.Reminder
	InDays int `json:"in_days"`
}

// Validate checks a fixture document against the embedded JSON schema.
func Validate(ctx context.Context, data []byte) error {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaJSON, rs); err != nil {
		return fmt.Errorf("compile fixture schema: %w", err)
	}

	verrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return fmt.Errorf("validate fixtures: %w", err)
	}
	if len(verrs) > 0 {
		var sb strings.Builder
		for _, v := range verrs {
			sb.WriteString(v.PropertyPath)
			sb.WriteString(": ")
			sb.WriteString(v.Message)
			sb.WriteString("; ")
		}
		return fmt.Errorf("fixtures do not match schema: %s", sb.String())
	}

	return nil
}

// Seed loads the embedded dataset into st, replacing its contents.
func Seed(ctx context.Context, st *store.Store) error {
	return SeedDocument(ctx, st, defaultDocument)
}

// SeedDocument validates data and builds the dataset in a scratch store: the
// static part is restored, then interactions are logged through the store so
// last-contacted dates and interaction timeline events follow the usual
// rules. st is replaced only when every step succeeds.
func SeedDocument(ctx context.Context, st *store.Store, data []byte) error {
	if err := Validate(ctx, data); err != nil {
		return err
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	now := st.Now()
	scratch := store.New(store.WithClock(st.Now))
	if err := scratch.Restore(build(doc, now)); err != nil {
		return fmt.Errorf("restore fixtures: %w", err)
	}

	for _, in := range doc.Interactions {
		i := in.Interaction
		i.Date = daysAgo(now, in.DaysAgo)
		if in.FollowUpInDays != nil {
			f := now.AddDate(0, 0, *in.FollowUpInDays)
			i.FollowUpNeeded = true
			i.FollowUpDate = &f
		}
		if _, err := scratch.AddInteraction(i); err != nil {
			return fmt.Errorf("seed interaction %s: %w", in.ID, err)
		}
	}

	if err := st.Restore(scratch.Snapshot()); err != nil {
		return fmt.Errorf("restore fixtures: %w", err)
	}
	return nil
}

func build(doc document, now time.Time) *models.Snapshot {
	snap := &models.Snapshot{Profile: doc.Profile}
	snap.Profile.UpdatedAt = now

	for _, k := range doc.Connections {
		c := k.Connection
		c.CreatedAt = daysAgo(now, k.CreatedDaysAgo)
		c.UpdatedAt = c.CreatedAt
		c.LastContacted = nil
		snap.Connections = append(snap.Connections, c)
	}

	for _, fc := range doc.Companies {
		c := fc.Company
		c.CreatedAt = daysAgo(now, fc.CreatedDaysAgo)
		c.UpdatedAt = c.CreatedAt
		if fc.DeadlineInDays != nil {
			d := now.AddDate(0, 0, *fc.DeadlineInDays)
			c.Deadline = &d
		}
		if c.RequiredSkills == nil {
			c.RequiredSkills = []string{}
		}

		events := []models.TimelineEvent{store.CreatedEvent(c, c.CreatedAt)}
		prev := models.StatusThinking
		for _, h := range fc.History {
			at := daysAgo(now, h.DaysAgo)
			events = append(events, store.StatusEvent(c.ID, prev, h.Status, at))
			prev = h.Status
			if at.After(c.UpdatedAt) {
				c.UpdatedAt = at
			}
		}
		for i := range events {
			events[i].ID = fmt.Sprintf("%s-event-%d", c.ID, i+1)
		}
		snap.Timeline = append(snap.Timeline, events...)

		for i, n := range fc.Notes {
			at := daysAgo(now, n.DaysAgo)
			snap.Notes = append(snap.Notes, models.Note{
				ID:        fmt.Sprintf("%s-note-%d", c.ID, i+1),
				CompanyID: c.ID,
				Content:   n.Content,
				CreatedAt: at,
				UpdatedAt: at,
			})
		}

		snap.Companies = append(snap.Companies, c)
	}

	for _, fr := range doc.Reminders {
		r := fr.Reminder
		r.ReminderDate = now.AddDate(0, 0, fr.InDays)
		r.CreatedAt = now
		if r.Completed {
			at := now
			r.CompletedAt = &at
		}
		snap.Reminders = append(snap.Reminders, r)
	}

	return snap
}

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}
