package export_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/garnizeh/pathfinder/internal/export"
	"github.com/garnizeh/pathfinder/pkg/models"
)

func TestCompanies(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 10, 2, 18, 30, 0, 0, time.UTC)
	companies := []models.Company{
		{Name: "Acme", Role: `Intern, "Platform"`, Status: models.StatusInterviewing, Location: "Remote", CreatedAt: created, UpdatedAt: updated},
		{Name: "Globex", Role: "PM", Status: models.StatusThinking, CreatedAt: created, UpdatedAt: created},
	}

	var buf bytes.Buffer
	if err := export.Companies(&buf, companies); err != nil {
		t.Fatalf("Companies returned error: %v", err)
	}

	want := `"Company","Role","Status","Location","Date Added","Last Updated"
"Acme","Intern, ""Platform""","Interviewing","Remote","2026-09-01","2026-10-02"
"Globex","PM","Thinking","","2026-09-01","2026-09-01"
`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected csv:\n got: %q\nwant: %q", got, want)
	}

	// output must be readable by a standard csv parser
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records got %d", len(records))
	}
	if records[1][1] != `Intern, "Platform"` {
		t.Fatalf("round trip lost quoting: %q", records[1][1])
	}
}

func TestCompanies_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Companies(&buf, nil); err != nil {
		t.Fatalf("Companies returned error: %v", err)
	}
	if buf.String() != "\"Company\",\"Role\",\"Status\",\"Location\",\"Date Added\",\"Last Updated\"\n" {
		t.Fatalf("unexpected header only output: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestCompanies_WriteError(t *testing.T) {
	if err := export.Companies(failingWriter{}, []models.Company{{Name: "Acme"}}); err == nil {
		t.Fatalf("expected error from failing writer")
	}
}

func TestFileName(t *testing.T) {
	if got := export.FileName("2026-10-18"); got != "pathfinder-applications-2026-10-18.csv" {
		t.Fatalf("unexpected file name %q", got)
	}
}
