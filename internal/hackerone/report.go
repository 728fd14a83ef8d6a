package hackerone

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Report is a single vulnerability disclosure. Instances are built once by
// LoadReport, from the network or from the local cache, and never mutated.
// Derived fields are computed at construction time from the primary ones.
type Report struct {
	ID int

	Title                string
	FormattedTitle       string
	Reporter             string
	ReporterURL          string
	ReporterMarkdownLink string
	Weakness             *string // nil when the platform has not categorized the report
	ReportURL            string
	Body                 string
	FormattedBody        string
	SubmittedAt          time.Time

	// Raw retains the full API document for downstream extraction of the
	// activity timeline and its attachments.
	Raw json.RawMessage
}

// LoadReport validates and maps a raw report document into a Report.
// A missing required field fails with a MappingError naming the field.
func LoadReport(raw json.RawMessage) (*Report, error) {
	var doc struct {
		Data *reportPayload `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode report document: %w", err)
	}
	if doc.Data == nil {
		return nil, NewMappingError("report", "data")
	}

	payload := doc.Data
	if payload.Type != "report" {
		return nil, &WrongTypeError{Want: "report", Got: payload.Type}
	}
	if payload.ID == nil {
		return nil, NewMappingError("report", "id")
	}
	id, err := strconv.Atoi(*payload.ID)
	if err != nil {
		return nil, fmt.Errorf("report id %q is not numeric: %w", *payload.ID, err)
	}
	if payload.Attributes.Title == nil {
		return nil, NewMappingError("report", "title")
	}
	title := *payload.Attributes.Title

	// The reporter handle sits three levels deep in the relationships graph.
	if payload.Relationships.Reporter.Data.Attributes.Username == nil {
		return nil, NewMappingError("report", "username")
	}
	reporter := *payload.Relationships.Reporter.Data.Attributes.Username

	// The API omits the weakness relationship entirely until triage
	// categorizes the report.
	var weakness *string
	if payload.Relationships.Weakness != nil {
		name := payload.Relationships.Weakness.Data.Attributes.Name
		weakness = &name
	}

	if payload.Attributes.VulnerabilityInformation == nil {
		return nil, NewMappingError("report", "vulnerability_information")
	}
	body := *payload.Attributes.VulnerabilityInformation

	submittedAt, err := parseTimestamp(payload.Attributes.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report submission timestamp: %w", err)
	}

	reportURL := fmt.Sprintf("https://hackerone.com/reports/%d", id)
	reporterURL := fmt.Sprintf("https://hackerone.com/%s", reporter)

	return &Report{
		ID:                   id,
		Title:                title,
		FormattedTitle:       fmt.Sprintf("[HackerOne] %s", title),
		Reporter:             reporter,
		ReporterURL:          reporterURL,
		ReporterMarkdownLink: fmt.Sprintf("[%s](%s)", reporter, reporterURL),
		Weakness:             weakness,
		ReportURL:            reportURL,
		Body:                 body,
		FormattedBody:        formatReportBody(reportURL, reporterURL, weakness, body, submittedAt),
		SubmittedAt:          submittedAt,
		Raw:                  raw,
	}, nil
}

// formatReportBody builds the composite body with a metadata header, the form
// consumed by the tracker export and the show command.
func formatReportBody(reportURL, reporterURL string, weakness *string, body string, submittedAt time.Time) string {
	weaknessName := "Unclassified"
	if weakness != nil {
		weaknessName = *weakness
	}
	return fmt.Sprintf("HackerOne Report: %s\n"+
		"Report Date: %s\n"+
		"Reporter: %s\n"+
		"Weakness: %s\n"+
		"%s",
		reportURL, submittedAt.Format("2006-01-02 15:04:05"), reporterURL, weaknessName, body)
}
