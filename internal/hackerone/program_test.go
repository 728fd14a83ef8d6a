package hackerone

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAssetJSON = `{
	"id": "42",
	"type": "structured-scope",
	"attributes": {
		"asset_type": "URL",
		"asset_identifier": "*.example.com",
		"eligible_for_bounty": true,
		"eligible_for_submission": true,
		"max_severity": "critical",
		"created_at": "2020-05-01T10:00:00.000Z",
		"updated_at": "2021-06-01T10:00:00.000Z",
		"instruction": "Production only"
	}
}`

func validProgramJSON(id, handle string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"type": "program",
		"attributes": {
			"handle": %q,
			"name": "Acme Corp",
			"currency": "usd",
			"profile_picture": "https://profile-photos.example/acme.png",
			"submission_state": "open",
			"triage_active": true,
			"state": "public_mode",
			"started_accepting_at": "2020-05-01T10:00:00.000Z",
			"number_of_reports_for_user": 3,
			"number_of_valid_reports_for_user": 2,
			"bounty_earned_for_user": 500.5,
			"bookmarked": false,
			"allows_bounty_splitting": true,
			"offers_bounties": true
		}
	}`, id, handle)
}

func TestLoadProgram(t *testing.T) {
	program, err := LoadProgram(json.RawMessage(validProgramJSON("p1", "acme")))
	require.NoError(t, err)

	assert.Equal(t, "p1", program.ID)
	assert.Equal(t, "acme", program.Handle)
	assert.Equal(t, "Acme Corp", program.Name)
	assert.Equal(t, "usd", program.Currency)
	assert.True(t, program.TriageActive)
	assert.Equal(t, "public_mode", program.State)
	assert.Equal(t, 3, program.NumberOfReportsForUser)
	assert.Equal(t, 2, program.NumberOfValidReportsForUser)
	assert.Equal(t, 500.5, program.BountyEarnedForUser)
	assert.Nil(t, program.LastInvitationAcceptedAtForUser)
	assert.True(t, program.AllowsBountySplitting)
	assert.True(t, program.OffersBounties)
	assert.Equal(t, "https://hackerone.com/acme?type=team", program.URL())

	// Payloads from the list endpoint omit structured scopes entirely.
	assert.Empty(t, program.Assets)
}

func TestLoadProgramWithAssets(t *testing.T) {
	raw := fmt.Sprintf(`{
		"id": "p1",
		"type": "program",
		"attributes": {
			"handle": "acme",
			"name": "Acme Corp",
			"currency": "usd",
			"submission_state": "open",
			"state": "public_mode",
			"started_accepting_at": "2020-05-01T10:00:00.000Z"
		},
		"relationships": {
			"structured_scopes": {"data": [%s, %s]}
		}
	}`, validAssetJSON, validAssetJSON)

	program, err := LoadProgram(json.RawMessage(raw))
	require.NoError(t, err)

	// Two payloads sharing an id collapse to one asset.
	require.Len(t, program.Assets, 1)
	asset := program.Assets[0]
	assert.Equal(t, "42", asset.ID)
	assert.Equal(t, AssetTypeURL, asset.Type)
	assert.Equal(t, "*.example.com", asset.Identifier)
	assert.Equal(t, "critical", asset.MaxSeverity)
	require.NotNil(t, asset.Instruction)
	assert.Equal(t, "Production only", *asset.Instruction)
	assert.Nil(t, asset.Reference)
	assert.Nil(t, asset.ConfidentialityRequirement)
}

func TestLoadProgramMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{
			name:  "missing id",
			raw:   `{"type": "program", "attributes": {"handle": "acme", "name": "Acme"}}`,
			field: "id",
		},
		{
			name:  "missing handle",
			raw:   `{"id": "p1", "type": "program", "attributes": {"name": "Acme"}}`,
			field: "handle",
		},
		{
			name:  "missing name",
			raw:   `{"id": "p1", "type": "program", "attributes": {"handle": "acme"}}`,
			field: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProgram(json.RawMessage(tt.raw))
			var mappingErr *MappingError
			require.ErrorAs(t, err, &mappingErr)
			assert.Equal(t, "program", mappingErr.Entity)
			assert.Equal(t, tt.field, mappingErr.Field)
		})
	}
}

func TestParseAssetType(t *testing.T) {
	for _, value := range []string{
		"URL", "OTHER", "GOOGLE_PLAY_APP_ID", "APPLE_STORE_APP_ID",
		"WINDOWS_APP_STORE_APP_ID", "CIDR", "SOURCE_CODE",
		"DOWNLOADABLE_EXECUTABLES", "HARDWARE", "OTHER_APK", "OTHER_IPA",
		"TESTFLIGHT",
	} {
		parsed, err := ParseAssetType(value)
		require.NoError(t, err)
		assert.Equal(t, AssetType(value), parsed)
	}

	_, err := ParseAssetType("SMART_CONTRACT")
	assert.Error(t, err)
}

func TestLoadAssetUnknownType(t *testing.T) {
	raw := `{
		"id": "43",
		"attributes": {
			"asset_type": "CARRIER_PIGEON",
			"created_at": "2020-05-01T10:00:00.000Z",
			"updated_at": "2020-05-01T10:00:00.000Z"
		}
	}`
	_, err := LoadAsset(json.RawMessage(raw))
	assert.ErrorContains(t, err, "unknown asset type")
}
