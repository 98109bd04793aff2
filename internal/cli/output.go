package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/fatih/color"
)

const maskedValue = "******"

var (
	markOK      = color.GreenString("✓")
	markFailed  = color.RedString("✗")
	markWarning = color.YellowString("!")
)

func kindSign(kind models.DiffKind) string {
	switch kind {
	case models.DiffAdded:
		return color.GreenString("+")
	case models.DiffRemoved:
		return color.RedString("-")
	case models.DiffModified:
		return color.YellowString("~")
	default:
		return "="
	}
}

// displayValue masks secret values unless showValues is set.
func displayValue(value *string, record *models.Record, showValues bool) string {
	if value == nil {
		return "-"
	}
	if record != nil && record.Secret && !showValues {
		return maskedValue
	}
	return *value
}

func printDiff(w io.Writer, entries []models.DiffEntry, leftLabel, rightLabel string, showValues bool) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No matching keys.")
		return
	}

	for _, e := range entries {
		left := displayValue(e.LeftValue, e.LeftRecord, showValues)
		right := displayValue(e.RightValue, e.RightRecord, showValues)

		switch e.Kind {
		case models.DiffAdded:
			fmt.Fprintf(w, "%s %s  %s=%s\n", kindSign(e.Kind), e.Key, rightLabel, right)
		case models.DiffRemoved:
			fmt.Fprintf(w, "%s %s  %s=%s\n", kindSign(e.Kind), e.Key, leftLabel, left)
		case models.DiffModified:
			fmt.Fprintf(w, "%s %s  %s=%s  %s=%s\n", kindSign(e.Kind), e.Key, leftLabel, left, rightLabel, right)
		default:
			fmt.Fprintf(w, "%s %s\n", kindSign(e.Kind), e.Key)
		}
	}
}

func printStatistics(w io.Writer, stats models.DiffStatistics) {
	fmt.Fprintf(w, "\n%d added, %d removed, %d modified, %d unchanged (%d changes in %d keys)\n",
		stats.Added, stats.Removed, stats.Modified, stats.Unchanged, stats.TotalChanges, stats.TotalRecords)
}

func printSnapshot(w io.Writer, s service.SyncSnapshot) {
	if s.User != nil {
		fmt.Fprintf(w, "Account:   %s\n", s.User.Email)
	} else {
		fmt.Fprintln(w, "Account:   not logged in")
	}
	fmt.Fprintf(w, "State:     %s\n", stateLabel(s.State))
	fmt.Fprintf(w, "Last sync: %s\n", formatTime(s.LastSync))
	fmt.Fprintf(w, "Pending:   %d\n", s.PendingChanges)
	if len(s.Conflicts) > 0 {
		fmt.Fprintf(w, "%s %d open conflict(s), see `envkeeper conflicts`\n", markWarning, len(s.Conflicts))
	}
	if s.LastError != "" {
		fmt.Fprintf(w, "%s %s\n", markFailed, s.LastError)
	}
}

func stateLabel(state models.SyncState) string {
	switch state.Kind() {
	case models.SyncIdle:
		return color.GreenString(state.String())
	case models.SyncSyncing:
		return color.CyanString(state.String())
	case models.SyncConflict:
		return color.YellowString(state.String())
	case models.SyncError:
		return color.RedString(state.String())
	default:
		return state.String()
	}
}

func printOutcome(w io.Writer, outcome models.SyncOutcome) {
	fmt.Fprintf(w, "Pushed: %d, pulled: %d, conflicts: %d\n", outcome.Pushed, outcome.Pulled, outcome.Conflicts)
	for _, msg := range outcome.Errors {
		fmt.Fprintf(w, "%s %s\n", markFailed, msg)
	}
}

func printConflicts(w io.Writer, conflicts []models.ConflictRecord, projectName func(id string) string) {
	if len(conflicts) == 0 {
		fmt.Fprintf(w, "%s No conflicts.\n", markOK)
		return
	}
	for _, c := range conflicts {
		fmt.Fprintf(w, "%s %s  project %s\n", markWarning, c.ID, color.CyanString(projectName(c.ProjectID)))
		fmt.Fprintf(w, "    local changed  %s\n", c.LocalModifiedAt.Local().Format(time.DateTime))
		fmt.Fprintf(w, "    remote changed %s\n", c.RemoteModifiedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintln(w, "\nResolve with: envkeeper resolve <id|project> local|remote|both|merge")
}

func printHistory(w io.Writer, events []models.SyncEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No sync history.")
		return
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %-9s", e.Timestamp.Local().Format(time.DateTime), e.Type)
		if e.Key != "" {
			line += " " + e.Key
		}
		if e.Message != "" {
			line += "  " + e.Message
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}
