package hackerone

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReportJSON = `{
	"data": {
		"id": "1337",
		"type": "report",
		"attributes": {
			"title": "XSS in search",
			"vulnerability_information": "PoC body",
			"submitted_at": "2023-01-01T00:00:00.000Z"
		},
		"relationships": {
			"reporter": {
				"data": {"attributes": {"username": "hacker"}}
			},
			"weakness": {
				"data": {"attributes": {"name": "Cross-site Scripting (XSS)"}}
			}
		}
	}
}`

// mutateReport decodes the valid fixture, applies the mutation and re-encodes.
func mutateReport(t *testing.T, mutate func(data map[string]interface{})) json.RawMessage {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validReportJSON), &doc))
	mutate(doc["data"].(map[string]interface{}))
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestLoadReport(t *testing.T) {
	report, err := LoadReport(json.RawMessage(validReportJSON))
	require.NoError(t, err)

	assert.Equal(t, 1337, report.ID)
	assert.Equal(t, "XSS in search", report.Title)
	assert.Equal(t, "[HackerOne] XSS in search", report.FormattedTitle)
	assert.Equal(t, "hacker", report.Reporter)
	assert.Equal(t, "https://hackerone.com/hacker", report.ReporterURL)
	assert.Equal(t, "[hacker](https://hackerone.com/hacker)", report.ReporterMarkdownLink)
	assert.Equal(t, "https://hackerone.com/reports/1337", report.ReportURL)
	assert.Equal(t, "PoC body", report.Body)
	require.NotNil(t, report.Weakness)
	assert.Equal(t, "Cross-site Scripting (XSS)", *report.Weakness)
	assert.Equal(t, json.RawMessage(validReportJSON), report.Raw)

	assert.Contains(t, report.FormattedBody, "HackerOne Report: https://hackerone.com/reports/1337")
	assert.Contains(t, report.FormattedBody, "Reporter: https://hackerone.com/hacker")
	assert.Contains(t, report.FormattedBody, "Weakness: Cross-site Scripting (XSS)")
	assert.Contains(t, report.FormattedBody, "PoC body")
}

func TestLoadReportWithoutWeakness(t *testing.T) {
	raw := mutateReport(t, func(data map[string]interface{}) {
		relationships := data["relationships"].(map[string]interface{})
		delete(relationships, "weakness")
	})

	report, err := LoadReport(raw)
	require.NoError(t, err)
	assert.Nil(t, report.Weakness)
	assert.Contains(t, report.FormattedBody, "Weakness: Unclassified")
}

func TestLoadReportMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(data map[string]interface{})
	}{
		{
			name:  "missing id",
			field: "id",
			mutate: func(data map[string]interface{}) {
				delete(data, "id")
			},
		},
		{
			name:  "missing title",
			field: "title",
			mutate: func(data map[string]interface{}) {
				delete(data["attributes"].(map[string]interface{}), "title")
			},
		},
		{
			name:  "missing reporter username",
			field: "username",
			mutate: func(data map[string]interface{}) {
				reporter := data["relationships"].(map[string]interface{})["reporter"].(map[string]interface{})
				attributes := reporter["data"].(map[string]interface{})["attributes"].(map[string]interface{})
				delete(attributes, "username")
			},
		},
		{
			name:  "missing body",
			field: "vulnerability_information",
			mutate: func(data map[string]interface{}) {
				delete(data["attributes"].(map[string]interface{}), "vulnerability_information")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := LoadReport(mutateReport(t, tt.mutate))
			assert.Nil(t, report)

			var mappingErr *MappingError
			require.ErrorAs(t, err, &mappingErr)
			assert.Equal(t, "report", mappingErr.Entity)
			assert.Equal(t, tt.field, mappingErr.Field)
		})
	}
}

func TestLoadReportWrongType(t *testing.T) {
	raw := mutateReport(t, func(data map[string]interface{}) {
		data["type"] = "program"
	})

	_, err := LoadReport(raw)
	var wrongType *WrongTypeError
	require.ErrorAs(t, err, &wrongType)
	assert.Equal(t, "report", wrongType.Want)
	assert.Equal(t, "program", wrongType.Got)
}

func TestLoadReportUnparseableTimestamp(t *testing.T) {
	raw := mutateReport(t, func(data map[string]interface{}) {
		data["attributes"].(map[string]interface{})["submitted_at"] = "yesterday"
	})

	_, err := LoadReport(raw)
	assert.Error(t, err)
}

func TestParseTimestampStripsZoneMarker(t *testing.T) {
	withMarker, err := parseTimestamp("2023-01-01T00:00:00Z")
	require.NoError(t, err)
	withoutMarker, err := parseTimestamp("2023-01-01T00:00:00")
	require.NoError(t, err)

	assert.Equal(t, withoutMarker, withMarker)
}

func TestParseTimestampFractionalSeconds(t *testing.T) {
	ts, err := parseTimestamp("2023-06-15T12:30:45.123Z")
	require.NoError(t, err)
	assert.Equal(t, 123000000, ts.Nanosecond())
}
