package hackerone

import (
	"encoding/json"
	"fmt"
	"time"
)

// Program is a bug-bounty engagement owning zero or more in-scope Assets.
// Identity is defined by ID alone: two payloads sharing an id are the same
// program regardless of other field differences.
type Program struct {
	ID string

	Handle                          string
	Name                            string
	Currency                        string
	ProfilePicture                  string
	SubmissionState                 string
	TriageActive                    bool
	State                           string
	StartedAcceptingAt              time.Time
	NumberOfReportsForUser          int
	NumberOfValidReportsForUser     int
	BountyEarnedForUser             float64
	LastInvitationAcceptedAtForUser *string
	Bookmarked                      bool
	AllowsBountySplitting           bool
	OffersBounties                  bool

	// Assets is empty when the payload comes from the list endpoint; only
	// the program detail endpoint includes structured scopes.
	Assets []Asset
}

// URL is the program page on HackerOne.
func (p *Program) URL() string {
	return fmt.Sprintf("https://hackerone.com/%s?type=team", p.Handle)
}

// LoadProgram validates and maps a raw program resource into a Program.
func LoadProgram(raw json.RawMessage) (*Program, error) {
	var payload programPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode program payload: %w", err)
	}

	if payload.ID == nil {
		return nil, NewMappingError("program", "id")
	}
	if payload.Attributes.Handle == nil {
		return nil, NewMappingError("program", "handle")
	}
	if payload.Attributes.Name == nil {
		return nil, NewMappingError("program", "name")
	}

	startedAcceptingAt, err := parseTimestamp(payload.Attributes.StartedAcceptingAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_accepting_at: %w", err)
	}

	assets, err := loadAssets(payload.Relationships.StructuredScopes)
	if err != nil {
		return nil, err
	}

	return &Program{
		ID:                              *payload.ID,
		Handle:                          *payload.Attributes.Handle,
		Name:                            *payload.Attributes.Name,
		Currency:                        payload.Attributes.Currency,
		ProfilePicture:                  payload.Attributes.ProfilePicture,
		SubmissionState:                 payload.Attributes.SubmissionState,
		TriageActive:                    payload.Attributes.TriageActive,
		State:                           payload.Attributes.State,
		StartedAcceptingAt:              startedAcceptingAt,
		NumberOfReportsForUser:          payload.Attributes.NumberOfReportsForUser,
		NumberOfValidReportsForUser:     payload.Attributes.NumberOfValidReportsForUser,
		BountyEarnedForUser:             payload.Attributes.BountyEarnedForUser,
		LastInvitationAcceptedAtForUser: payload.Attributes.LastInvitationAcceptedAtForUser,
		Bookmarked:                      payload.Attributes.Bookmarked,
		AllowsBountySplitting:           payload.Attributes.AllowsBountySplitting,
		OffersBounties:                  payload.Attributes.OffersBounties,
		Assets:                          assets,
	}, nil
}

// loadAssets maps the structured scopes of a program detail payload. A missing
// relationship yields an empty slice: the list endpoint never includes assets.
func loadAssets(scopes *struct {
	Data []json.RawMessage `json:"data"`
}) ([]Asset, error) {
	if scopes == nil {
		return nil, nil
	}

	assets := make([]Asset, 0, len(scopes.Data))
	seen := make(map[string]struct{}, len(scopes.Data))
	for _, rawAsset := range scopes.Data {
		asset, err := LoadAsset(rawAsset)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[asset.ID]; ok {
			continue
		}
		seen[asset.ID] = struct{}{}
		assets = append(assets, *asset)
	}
	return assets, nil
}
