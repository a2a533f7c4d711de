// Package export renders store views for download.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// CompanyHeader is the column set of a company export.
var CompanyHeader = []string{"Company", "Role", "Status", "Location", "Date Added", "Last Updated"}

const dateLayout = "2006-01-02"

// Companies writes one quoted CSV row per company after the header. Every
// field is wrapped in double quotes and embedded quotes are doubled.
func Companies(w io.Writer, companies []models.Company) error {
	bw := bufio.NewWriter(w)

	if err := writeRow(bw, CompanyHeader); err != nil {
		return err
	}
	for _, c := range companies {
		row := []string{
			c.Name,
			c.Role,
			c.Status.Label(),
			c.Location,
			c.CreatedAt.Format(dateLayout),
			c.UpdatedAt.Format(dateLayout),
		}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// FileName is the suggested download name for an export made on day.
func FileName(day string) string {
	return "pathfinder-applications-" + day + ".csv"
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
		if _, err := w.WriteString(quote(f)); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
