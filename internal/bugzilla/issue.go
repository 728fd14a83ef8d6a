package bugzilla

import (
	"github.com/h1export/h1export/internal/hackerone"
)

// Classification applied to every exported HackerOne report.
const (
	exportProduct   = "Websites"
	exportComponent = "Other"
	exportGroup     = "websites-security"
	exportType      = "defect"
	exportVersion   = "unspecified"
)

// Issue is the field set Bugzilla needs to create a bug.
type Issue struct {
	Product     string
	Component   string
	Groups      []string
	Summary     string
	Description string
	Type        string
	Version     string
}

// IssueFromReport converts a report into the bug-creation field set. Pure
// conversion, no I/O; the creation call and attachment uploads are the
// client's job.
func IssueFromReport(report *hackerone.Report) Issue {
	return Issue{
		Product:     exportProduct,
		Component:   exportComponent,
		Groups:      []string{exportGroup},
		Summary:     report.FormattedTitle,
		Description: report.FormattedBody,
		Type:        exportType,
		Version:     exportVersion,
	}
}
