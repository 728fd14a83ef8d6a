package hackerone

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Attachment is a file uploaded to a report's comment activity. The download
// URL is pre-signed and time-limited. LocalPath is empty until the attachment
// has been downloaded, then set exactly once.
type Attachment struct {
	ID int

	Type          string
	ExpiringURL   string
	CreatedAt     time.Time
	FileName      string
	ContentType   string
	FileSizeBytes int64
	FileSizeHuman string
	LocalPath     string
}

// LoadAttachment validates and maps a raw attachment resource into an Attachment.
func LoadAttachment(raw json.RawMessage) (*Attachment, error) {
	var payload attachmentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode attachment payload: %w", err)
	}

	if payload.Type != "attachment" {
		return nil, &WrongTypeError{Want: "attachment", Got: payload.Type}
	}
	if payload.ID == nil {
		return nil, NewMappingError("attachment", "id")
	}
	id, err := strconv.Atoi(*payload.ID)
	if err != nil {
		return nil, fmt.Errorf("attachment id %q is not numeric: %w", *payload.ID, err)
	}

	createdAt, err := parseTimestamp(payload.Attributes.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse attachment created_at: %w", err)
	}

	return &Attachment{
		ID:            id,
		Type:          payload.Type,
		ExpiringURL:   payload.Attributes.ExpiringURL,
		CreatedAt:     createdAt,
		FileName:      payload.Attributes.FileName,
		ContentType:   payload.Attributes.ContentType,
		FileSizeBytes: payload.Attributes.FileSize,
		FileSizeHuman: humanize.IBytes(uint64(payload.Attributes.FileSize)),
	}, nil
}
