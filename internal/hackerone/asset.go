package hackerone

import (
	"encoding/json"
	"fmt"
	"time"
)

// AssetType is the closed enumeration of scope kinds the platform knows.
type AssetType string

const (
	AssetTypeURL                     AssetType = "URL"
	AssetTypeOther                   AssetType = "OTHER"
	AssetTypeGooglePlayAppID         AssetType = "GOOGLE_PLAY_APP_ID"
	AssetTypeAppleStoreAppID         AssetType = "APPLE_STORE_APP_ID"
	AssetTypeWindowsAppStoreAppID    AssetType = "WINDOWS_APP_STORE_APP_ID"
	AssetTypeCIDR                    AssetType = "CIDR"
	AssetTypeSourceCode              AssetType = "SOURCE_CODE"
	AssetTypeDownloadableExecutables AssetType = "DOWNLOADABLE_EXECUTABLES"
	AssetTypeHardware                AssetType = "HARDWARE"
	AssetTypeOtherAPK                AssetType = "OTHER_APK"
	AssetTypeOtherIPA                AssetType = "OTHER_IPA"
	AssetTypeTestflight              AssetType = "TESTFLIGHT"
)

var knownAssetTypes = map[AssetType]struct{}{
	AssetTypeURL:                     {},
	AssetTypeOther:                   {},
	AssetTypeGooglePlayAppID:         {},
	AssetTypeAppleStoreAppID:         {},
	AssetTypeWindowsAppStoreAppID:    {},
	AssetTypeCIDR:                    {},
	AssetTypeSourceCode:              {},
	AssetTypeDownloadableExecutables: {},
	AssetTypeHardware:                {},
	AssetTypeOtherAPK:                {},
	AssetTypeOtherIPA:                {},
	AssetTypeTestflight:              {},
}

// ParseAssetType converts an API asset_type value into an AssetType.
func ParseAssetType(value string) (AssetType, error) {
	t := AssetType(value)
	if _, ok := knownAssetTypes[t]; !ok {
		return "", fmt.Errorf("unknown asset type %q", value)
	}
	return t, nil
}

// Asset is an in-scope target of a Program. Assets have no lifecycle of their
// own; they exist only inside a program's scope. Identity is by ID.
type Asset struct {
	ID string

	Type                  AssetType
	Identifier            string
	EligibleForBounty     bool
	EligibleForSubmission bool
	MaxSeverity           string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Instruction                *string
	Reference                  *string
	ConfidentialityRequirement *string
	IntegrityRequirement       *string
	AvailabilityRequirement    *string
}

// LoadAsset validates and maps a raw structured scope resource into an Asset.
func LoadAsset(raw json.RawMessage) (*Asset, error) {
	var payload assetPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode asset payload: %w", err)
	}

	if payload.ID == nil {
		return nil, NewMappingError("asset", "id")
	}

	assetType, err := ParseAssetType(payload.Attributes.AssetType)
	if err != nil {
		return nil, err
	}

	createdAt, err := parseTimestamp(payload.Attributes.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(payload.Attributes.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset updated_at: %w", err)
	}

	return &Asset{
		ID:                         *payload.ID,
		Type:                       assetType,
		Identifier:                 payload.Attributes.AssetIdentifier,
		EligibleForBounty:          payload.Attributes.EligibleForBounty,
		EligibleForSubmission:      payload.Attributes.EligibleForSubmission,
		MaxSeverity:                payload.Attributes.MaxSeverity,
		CreatedAt:                  createdAt,
		UpdatedAt:                  updatedAt,
		Instruction:                payload.Attributes.Instruction,
		Reference:                  payload.Attributes.Reference,
		ConfidentialityRequirement: payload.Attributes.ConfidentialityRequirement,
		IntegrityRequirement:       payload.Attributes.IntegrityRequirement,
		AvailabilityRequirement:    payload.Attributes.AvailabilityRequirement,
	}, nil
}
