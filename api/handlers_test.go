package api_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/pathfinder/api"
	"github.com/garnizeh/pathfinder/internal/fixtures"
	"github.com/garnizeh/pathfinder/internal/store"
	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

var testNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func setupServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New(store.WithClock(func() time.Time { return testNow }))
	require.NoError(t, fixtures.Seed(context.Background(), st))

	srv := httptest.NewServer(api.SetupRoutes(st, api.SystemInfo{Version: "test", BuildTime: "2026-10-18T00:00:00Z"}))
	t.Cleanup(srv.Close)
	return srv, st
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	out, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func TestListCompanies(t *testing.T) {
	srv, _ := setupServer(t)

	res, body := do(t, srv, http.MethodGet, "/v1/companies?sort=name", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	list := decode[[]models.Company](t, body)
	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Datadog", "Figma", "Google", "Meta", "Microsoft", "Notion", "Stripe"}, names)

	res, body = do(t, srv, http.MethodGet, "/v1/companies?status=interviewing", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decode[[]models.Company](t, body), 2)

	res, body = do(t, srv, http.MethodGet, "/v1/companies?search=STRI", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	found := decode[[]models.Company](t, body)
	require.Len(t, found, 1)
	assert.Equal(t, "company-3", found[0].ID)
}

func TestCreateCompany(t *testing.T) {
	srv, _ := setupServer(t)

	res, body := do(t, srv, http.MethodPost, "/v1/companies", map[string]any{
		"name":               "  Acme  ",
		"role":               "Backend Intern",
		"url":                "https://acme.example.com/careers/1",
		"required_skills":    []string{"Go", " ", "SQL"},
		"linked_contact_ids": []string{"connection-2", "missing"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	c := decode[models.Company](t, body)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, models.StatusThinking, c.Status)
	assert.Equal(t, []string{"Go", "SQL"}, c.RequiredSkills)
	assert.Equal(t, []string{"connection-2"}, c.LinkedContactIDs)

	res, body = do(t, srv, http.MethodGet, "/v1/companies/"+c.ID+"/timeline", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	events := decode[[]models.TimelineEvent](t, body)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventCreated, events[0].Type)

	res, body = do(t, srv, http.MethodGet, "/v1/connections/connection-2/companies", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), c.ID)
}

func TestCreateCompany_Errors(t *testing.T) {
	srv, _ := setupServer(t)

	tests := []struct {
		name string
		body any
		want int
	}{
		{name: "bad json", body: "{", want: http.StatusBadRequest},
		{name: "missing role", body: map[string]any{"name": "Acme"}, want: http.StatusBadRequest},
		{name: "blank name", body: map[string]any{"name": "  ", "role": "SWE"}, want: http.StatusBadRequest},
		{name: "ftp url", body: map[string]any{"name": "Acme", "role": "SWE", "url": "ftp://acme.example.com"}, want: http.StatusBadRequest},
		{name: "relative url", body: map[string]any{"name": "Acme", "role": "SWE", "url": "/jobs/1"}, want: http.StatusBadRequest},
		{name: "unknown status", body: map[string]any{"name": "Acme", "role": "SWE", "status": "ghosted"}, want: http.StatusBadRequest},
		{name: "duplicate id", body: map[string]any{"id": "company-1", "name": "Acme", "role": "SWE"}, want: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := do(t, srv, http.MethodPost, "/v1/companies", tt.body)
			assert.Equal(t, tt.want, res.StatusCode, string(body))
		})
	}

	res, _ := do(t, srv, http.MethodGet, "/v1/companies", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestValidationErrors(t *testing.T) {
	srv, _ := setupServer(t)

	tests := []struct {
		name string
		path string
		body map[string]any
		want string
	}{
		{name: "blank company name", path: "/v1/companies", body: map[string]any{"name": " ", "role": "SWE"}, want: "name: is required"},
		{name: "company url scheme", path: "/v1/companies", body: map[string]any{"name": "Acme", "role": "SWE", "url": "ftp://acme.example.com"}, want: "url: must be an http or https URL"},
		{name: "connection email", path: "/v1/connections", body: map[string]any{"name": "Ana", "email": "ana@"}, want: "email: must be a valid email address"},
		{name: "negative mutuals", path: "/v1/connections", body: map[string]any{"name": "Ana", "mutual_connections": -1}, want: "mutual_connections: is out of range"},
		{name: "reminder date", path: "/v1/reminders", body: map[string]any{"message": "Prep"}, want: "reminder_date: is required"},
		{name: "interaction title", path: "/v1/interactions", body: map[string]any{"connection_id": "connection-1", "title": "  "}, want: "title: is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := do(t, srv, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Contains(t, string(body), tt.want)
		})
	}
}

func TestUpdateCompanyAndStatus(t *testing.T) {
	srv, st := setupServer(t)

	res, body := do(t, srv, http.MethodPut, "/v1/companies/company-3", map[string]any{
		"name":     "Stripe",
		"role":     "Infra Intern",
		"location": "Remote",
		"status":   "offer",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	c := decode[models.Company](t, body)
	assert.Equal(t, "Infra Intern", c.Role)
	assert.Equal(t, models.StatusThinking, c.Status, "status only changes through the status endpoint")

	res, body = do(t, srv, http.MethodPut, "/v1/companies/company-3/status", map[string]any{"status": "interviewing"})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	assert.Equal(t, models.StatusInterviewing, decode[models.Company](t, body).Status)

	res, body = do(t, srv, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats := decode[models.UserStats](t, body)
	assert.Equal(t, 3, stats.Interviewing)
	assert.Equal(t, 1, stats.Thinking)
	assert.Equal(t, st.Stats(), stats)

	res, _ = do(t, srv, http.MethodPut, "/v1/companies/company-3/status", map[string]any{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = do(t, srv, http.MethodPut, "/v1/companies/nope/status", map[string]any{"status": "applied"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = do(t, srv, http.MethodPut, "/v1/companies/nope", map[string]any{"name": "x", "role": "y"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteCompany(t *testing.T) {
	srv, _ := setupServer(t)

	res, _ := do(t, srv, http.MethodDelete, "/v1/companies/company-1", nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = do(t, srv, http.MethodGet, "/v1/companies/company-1", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = do(t, srv, http.MethodDelete, "/v1/companies/company-1", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body := do(t, srv, http.MethodGet, "/v1/connections/connection-1/companies", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, decode[[]models.Company](t, body))
}

func TestNotes(t *testing.T) {
	srv, _ := setupServer(t)

	res, _ := do(t, srv, http.MethodPost, "/v1/companies/company-1/notes", map[string]any{"content": "   "})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := do(t, srv, http.MethodPost, "/v1/companies/company-1/notes", map[string]any{"content": " Recruiter replied "})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	n := decode[models.Note](t, body)
	assert.Equal(t, "Recruiter replied", n.Content)

	res, body = do(t, srv, http.MethodPut, "/v1/notes/"+n.ID, map[string]any{"content": "Recruiter call Friday"})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	assert.Equal(t, "Recruiter call Friday", decode[models.Note](t, body).Content)

	res, body = do(t, srv, http.MethodGet, "/v1/companies/company-1/notes", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "Recruiter call Friday")

	res, _ = do(t, srv, http.MethodDelete, "/v1/notes/"+n.ID, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	res, _ = do(t, srv, http.MethodDelete, "/v1/notes/"+n.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = do(t, srv, http.MethodPost, "/v1/companies/nope/notes", map[string]any{"content": "x"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestContacts(t *testing.T) {
	srv, _ := setupServer(t)

	res, _ := do(t, srv, http.MethodPost, "/v1/companies/company-3/contacts/connection-6", nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body := do(t, srv, http.MethodGet, "/v1/companies/company-3/contacts", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	contacts := decode[[]models.Connection](t, body)
	require.Len(t, contacts, 1)
	assert.Equal(t, "connection-6", contacts[0].ID)

	res, body = do(t, srv, http.MethodGet, "/v1/connections/connection-6", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, decode[models.Connection](t, body).LinkedApplicationIDs, "company-3")

	res, _ = do(t, srv, http.MethodDelete, "/v1/companies/company-3/contacts/connection-6", nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = do(t, srv, http.MethodGet, "/v1/companies/company-3/contacts", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, decode[[]models.Connection](t, body))

	res, _ = do(t, srv, http.MethodPost, "/v1/companies/company-3/contacts/nobody", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestConnections(t *testing.T) {
	srv, _ := setupServer(t)

	res, _ := do(t, srv, http.MethodPost, "/v1/connections", map[string]any{"name": "Ana", "email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = do(t, srv, http.MethodPost, "/v1/connections", map[string]any{"name": "Ana", "linkedin_url": "linkedin.com/in/ana"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := do(t, srv, http.MethodPost, "/v1/connections", map[string]any{
		"name":         "Ana Souza",
		"email":        "ana@example.com",
		"linkedin_url": "https://www.linkedin.com/in/ana",
		"same_school":  true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	ana := decode[models.Connection](t, body)
	assert.Nil(t, ana.LastContacted)

	res, body = do(t, srv, http.MethodGet, "/v1/connections?filter=need_followup", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	ids := map[string]bool{}
	for _, c := range decode[[]models.Connection](t, body) {
		ids[c.ID] = true
	}
	assert.True(t, ids[ana.ID])
	assert.True(t, ids["connection-6"])
	assert.False(t, ids["connection-3"])

	res, body = do(t, srv, http.MethodPut, "/v1/connections/"+ana.ID, map[string]any{"name": "Ana Souza", "role": "Recruiter"})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	assert.Equal(t, "Recruiter", decode[models.Connection](t, body).Role)

	res, _ = do(t, srv, http.MethodDelete, "/v1/connections/"+ana.ID, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	res, _ = do(t, srv, http.MethodGet, "/v1/connections/"+ana.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestInteractions(t *testing.T) {
	srv, _ := setupServer(t)

	res, _ := do(t, srv, http.MethodGet, "/v1/interactions", nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = do(t, srv, http.MethodPost, "/v1/interactions", map[string]any{"connection_id": "connection-6"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = do(t, srv, http.MethodPost, "/v1/interactions", map[string]any{"connection_id": "nobody", "title": "Call"})
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = do(t, srv, http.MethodPost, "/v1/interactions", map[string]any{"connection_id": "connection-6", "title": "Call", "type": "telegram"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := do(t, srv, http.MethodPost, "/v1/interactions", map[string]any{
		"connection_id":     "connection-6",
		"target_company_id": "company-7",
		"type":              "call",
		"title":             "Intro call",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	in := decode[models.Interaction](t, body)
	assert.True(t, in.Date.Equal(testNow))

	res, body = do(t, srv, http.MethodGet, "/v1/connections/connection-6", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	k := decode[models.Connection](t, body)
	require.NotNil(t, k.LastContacted)
	assert.True(t, k.LastContacted.Equal(testNow))

	res, body = do(t, srv, http.MethodGet, "/v1/interactions?connection_id=connection-6", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decode[[]models.Interaction](t, body), 1)

	res, body = do(t, srv, http.MethodGet, "/v1/companies/company-7/interactions", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decode[[]models.Interaction](t, body), 1)

	res, body = do(t, srv, http.MethodGet, "/v1/companies/company-7/timeline", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	events := decode[[]models.TimelineEvent](t, body)
	assert.Equal(t, models.EventInteraction, events[len(events)-1].Type)

	res, _ = do(t, srv, http.MethodDelete, "/v1/interactions/"+in.ID, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = do(t, srv, http.MethodGet, "/v1/connections/connection-6/interactions", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, decode[[]models.Interaction](t, body))
}

func TestReminders(t *testing.T) {
	srv, _ := setupServer(t)

	res, body := do(t, srv, http.MethodGet, "/v1/reminders?view=buckets", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	buckets := decode[repository.ReminderBuckets](t, body)
	assert.Len(t, buckets.Overdue, 1)
	assert.Len(t, buckets.Later, 1)

	res, _ = do(t, srv, http.MethodPost, "/v1/reminders", map[string]any{"message": "Follow up"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = do(t, srv, http.MethodPost, "/v1/reminders", map[string]any{"message": "x", "reminder_date": testNow, "company_id": "nope"})
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = do(t, srv, http.MethodPost, "/v1/reminders", map[string]any{
		"company_id":    "company-3",
		"type":          "apply",
		"message":       "Submit application",
		"reminder_date": testNow.Add(2 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
	r := decode[models.Reminder](t, body)
	assert.False(t, r.Completed)

	res, body = do(t, srv, http.MethodPost, "/v1/reminders/"+r.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	done := decode[models.Reminder](t, body)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	res, body = do(t, srv, http.MethodPost, "/v1/reminders/"+r.ID+"/reopen", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.False(t, decode[models.Reminder](t, body).Completed)

	res, body = do(t, srv, http.MethodPut, "/v1/reminders/"+r.ID, map[string]any{
		"message":       "Submit application today",
		"reminder_date": testNow.Add(time.Hour),
	})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	assert.Equal(t, "Submit application today", decode[models.Reminder](t, body).Message)

	res, body = do(t, srv, http.MethodGet, "/v1/reminders", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, decode[[]models.Reminder](t, body), 6)

	res, _ = do(t, srv, http.MethodDelete, "/v1/reminders/"+r.ID, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	res, _ = do(t, srv, http.MethodPost, "/v1/reminders/"+r.ID+"/complete", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestExportCSV(t *testing.T) {
	srv, _ := setupServer(t)

	res, body := do(t, srv, http.MethodGet, "/v1/companies/export.csv?status=applied&sort=name", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, res.Header.Get("Content-Disposition"), "pathfinder-applications-2026-10-18.csv")

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Company", "Role", "Status", "Location", "Date Added", "Last Updated"}, records[0])
	assert.Equal(t, "Figma", records[1][0])
	assert.Equal(t, "Google", records[2][0])
	assert.Equal(t, "Applied", records[1][2])
}

func TestProfile(t *testing.T) {
	srv, _ := setupServer(t)

	res, body := do(t, srv, http.MethodGet, "/v1/profile", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Jordan Rivera", decode[models.UserProfile](t, body).Name)

	res, _ = do(t, srv, http.MethodPut, "/v1/profile", map[string]any{"name": "Jordan", "email": "jordan@"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = do(t, srv, http.MethodPut, "/v1/profile", map[string]any{"name": "Jordan", "graduation_year": 12})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = do(t, srv, http.MethodPut, "/v1/profile", map[string]any{
		"name":            "Jordan R.",
		"email":           "jordan@stateu.edu",
		"graduation_year": 2028,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	p := decode[models.UserProfile](t, body)
	assert.Equal(t, "Jordan R.", p.Name)
	assert.Equal(t, 2028, p.GraduationYear)
}

type movingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *movingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *movingClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStats(t *testing.T) {
	srv, _ := setupServer(t)

	res, body := do(t, srv, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats := decode[models.UserStats](t, body)
	assert.Equal(t, 7, stats.TotalApplications)
	assert.Equal(t, 4, stats.TasksDue)
}

func TestStats_FollowTheClock(t *testing.T) {
	clk := &movingClock{now: testNow}
	st := store.New(store.WithClock(clk.Now))
	deadline := testNow.AddDate(0, 0, 3)
	_, err := st.AddCompany(models.Company{Name: "Acme", Role: "SWE", Status: models.StatusApplied, Deadline: &deadline})
	require.NoError(t, err)
	_, err = st.AddReminder(models.Reminder{Message: "Prep", ReminderDate: testNow.AddDate(0, 0, 10)})
	require.NoError(t, err)

	srv := httptest.NewServer(api.SetupRoutes(st, api.SystemInfo{Version: "test"}))
	t.Cleanup(srv.Close)

	res, body := do(t, srv, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats := decode[models.UserStats](t, body)
	assert.Equal(t, 1, stats.UpcomingDeadlines)
	assert.Zero(t, stats.TasksDue)

	// no writes happen, only time passes
	clk.Advance(5 * 24 * time.Hour)

	res, body = do(t, srv, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	stats = decode[models.UserStats](t, body)
	assert.Zero(t, stats.UpcomingDeadlines)
	assert.Equal(t, 1, stats.TasksDue)
}

func TestRoutes_PreflightAndSystem(t *testing.T) {
	srv, _ := setupServer(t)

	res, _ := do(t, srv, http.MethodOptions, "/v1/companies", nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, body := do(t, srv, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"version":"test"`)

	res, body = do(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"persistence":"memory"`)
	assert.Contains(t, string(body), `"loaded":true`)
	assert.Contains(t, string(body), `"applications":7`)
}
