package hackerone

import (
	"encoding/json"
	"strings"
	"time"
)

// The HackerOne Hacker API speaks JSON:API: every resource carries a type
// tag, an attributes object and a relationships graph. The payload structs
// below decode only the parts this tool consumes; pointer fields distinguish
// an absent key from a zero value so the mappers can validate presence.

type document struct {
	Data json.RawMessage `json:"data"`
}

type collectionDocument struct {
	Data  []json.RawMessage `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

type reportPayload struct {
	ID         *string `json:"id"`
	Type       string  `json:"type"`
	Attributes struct {
		Title                    *string `json:"title"`
		VulnerabilityInformation *string `json:"vulnerability_information"`
		SubmittedAt              string  `json:"submitted_at"`
	} `json:"attributes"`
	Relationships struct {
		Reporter struct {
			Data struct {
				Attributes struct {
					Username *string `json:"username"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"reporter"`
		Weakness *struct {
			Data struct {
				Attributes struct {
					Name string `json:"name"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"weakness"`
		Activities struct {
			Data []activityPayload `json:"data"`
		} `json:"activities"`
	} `json:"relationships"`
}

type activityPayload struct {
	Type       string `json:"type"`
	Attributes struct {
		Message  string `json:"message"`
		Internal bool   `json:"internal"`
	} `json:"attributes"`
	Relationships struct {
		Attachments *struct {
			Data []json.RawMessage `json:"data"`
		} `json:"attachments"`
	} `json:"relationships"`
}

type attachmentPayload struct {
	ID         *string `json:"id"`
	Type       string  `json:"type"`
	Attributes struct {
		ExpiringURL string `json:"expiring_url"`
		CreatedAt   string `json:"created_at"`
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
		FileSize    int64  `json:"file_size"`
	} `json:"attributes"`
}

type programPayload struct {
	ID         *string `json:"id"`
	Attributes struct {
		Handle                          *string `json:"handle"`
		Name                            *string `json:"name"`
		Currency                        string  `json:"currency"`
		ProfilePicture                  string  `json:"profile_picture"`
		SubmissionState                 string  `json:"submission_state"`
		TriageActive                    bool    `json:"triage_active"`
		State                           string  `json:"state"`
		StartedAcceptingAt              string  `json:"started_accepting_at"`
		NumberOfReportsForUser          int     `json:"number_of_reports_for_user"`
		NumberOfValidReportsForUser     int     `json:"number_of_valid_reports_for_user"`
		BountyEarnedForUser             float64 `json:"bounty_earned_for_user"`
		LastInvitationAcceptedAtForUser *string `json:"last_invitation_accepted_at_for_user"`
		Bookmarked                      bool    `json:"bookmarked"`
		AllowsBountySplitting           bool    `json:"allows_bounty_splitting"`
		OffersBounties                  bool    `json:"offers_bounties"`
	} `json:"attributes"`
	Relationships struct {
		StructuredScopes *struct {
			Data []json.RawMessage `json:"data"`
		} `json:"structured_scopes"`
	} `json:"relationships"`
}

type assetPayload struct {
	ID         *string `json:"id"`
	Attributes struct {
		AssetType                  string  `json:"asset_type"`
		AssetIdentifier            string  `json:"asset_identifier"`
		EligibleForBounty          bool    `json:"eligible_for_bounty"`
		EligibleForSubmission      bool    `json:"eligible_for_submission"`
		MaxSeverity                string  `json:"max_severity"`
		CreatedAt                  string  `json:"created_at"`
		UpdatedAt                  string  `json:"updated_at"`
		Instruction                *string `json:"instruction"`
		Reference                  *string `json:"reference"`
		ConfidentialityRequirement *string `json:"confidentiality_requirement"`
		IntegrityRequirement       *string `json:"integrity_requirement"`
		AvailabilityRequirement    *string `json:"availability_requirement"`
	} `json:"attributes"`
}

const timestampLayout = "2006-01-02T15:04:05.999999999"

// parseTimestamp parses an API timestamp. The API reports UTC instants with a
// trailing "Z"; the marker is stripped and the value parsed as a zone-less
// wall time. Zone info is deliberately never re-applied, so "...T00:00:00Z"
// and "...T00:00:00" yield the same instant.
func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(timestampLayout, strings.TrimSuffix(value, "Z"))
}
