package hackerone

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/h1export/h1export/internal/cache"
	"github.com/h1export/h1export/pkg/shared/config"
	"github.com/h1export/h1export/pkg/shared/console"
	"github.com/h1export/h1export/pkg/shared/files"
)

// Session orchestrates the API client, the report cache and the entity
// mappers behind single-call retrieval operations.
type Session struct {
	client     *Client
	cache      *cache.Store // nil when caching is disabled
	downloader *resty.Client
	logger     hclog.Logger
	console    console.Notifier
}

// NewSession builds a Session from the global configuration. The attachment
// downloader is a separate, unauthenticated client: expiring URLs are
// pre-signed and must not carry the API credentials.
func NewSession(globalConfig *config.Config, logger hclog.Logger, notifier console.Notifier, auth AuthInfo) *Session {
	var store *cache.Store
	if globalConfig.HackerOne.Cache.Enabled {
		store = cache.New(globalConfig.HackerOne.Cache.Path, logger)
	}

	return &Session{
		client:     NewClient(globalConfig, logger, notifier, auth),
		cache:      store,
		downloader: resty.New(),
		logger:     logger,
		console:    notifier,
	}
}

// ListPrograms pages through the programs collection and returns the programs
// deduplicated by id, in first-seen order. A page is consumed only while it
// has both data and a next link; the first page lacking either terminates the
// loop without being consumed.
func (s *Session) ListPrograms() ([]Program, error) {
	var programs []Program
	seen := make(map[string]struct{})

	pageNumber := 1
	for {
		raw, err := s.client.Get("programs", map[string]string{
			"page[number]": strconv.Itoa(pageNumber),
		})
		if err != nil {
			return nil, err
		}

		var page collectionDocument
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("failed to decode programs page %d: %w", pageNumber, err)
		}
		if page.Links.Next == "" || len(page.Data) == 0 {
			break
		}

		for _, rawProgram := range page.Data {
			program, err := LoadProgram(rawProgram)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[program.ID]; ok {
				continue
			}
			seen[program.ID] = struct{}{}
			programs = append(programs, *program)
		}
		pageNumber++
	}

	s.logger.Debug("fetched program list", "programs", len(programs), "pages", pageNumber-1)
	return programs, nil
}

// GetProgram retrieves a program, with its assets, by handle.
func (s *Session) GetProgram(handle string) (*Program, error) {
	raw, err := s.client.Get(fmt.Sprintf("programs/%s", handle), nil)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode program document: %w", err)
	}
	return LoadProgram(doc.Data)
}

// GetAssets returns only the assets of the given program. Useful after
// ListPrograms, whose payloads never include assets.
func (s *Session) GetAssets(handle string) ([]Asset, error) {
	program, err := s.GetProgram(handle)
	if err != nil {
		return nil, err
	}
	return program.Assets, nil
}

// GetReport retrieves a report by id, consulting the local cache when
// enabled. A cache miss fetches from the API and merges the payload into the
// cache file before mapping.
func (s *Session) GetReport(reportID int) (*Report, error) {
	endpoint := fmt.Sprintf("reports/%d", reportID)

	if s.cache == nil {
		raw, err := s.client.Get(endpoint, nil)
		if err != nil {
			return nil, err
		}
		return LoadReport(raw)
	}

	if raw, ok := s.cache.Read(reportID); ok {
		s.console.CacheHit(reportID)
		return LoadReport(raw)
	}

	s.console.CacheMiss(reportID)
	raw, err := s.client.Get(endpoint, nil)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Write(reportID, raw); err != nil {
		return nil, fmt.Errorf("failed to cache report %d: %w", reportID, err)
	}
	return LoadReport(raw)
}

// GetAttachments extracts the attachments of a report from its retained raw
// payload. Only attachments under public comment activities count: internal
// comments and every other activity kind are skipped. Source order is kept.
func (s *Session) GetAttachments(report *Report) ([]Attachment, error) {
	var doc struct {
		Data *reportPayload `json:"data"`
	}
	if err := json.Unmarshal(report.Raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode report activities: %w", err)
	}
	if doc.Data == nil {
		return nil, NewMappingError("report", "data")
	}

	var attachments []Attachment
	for _, activity := range doc.Data.Relationships.Activities.Data {
		if activity.Type != "activity-comment" {
			continue
		}
		if activity.Attributes.Internal {
			continue
		}
		if activity.Relationships.Attachments == nil {
			continue
		}
		for _, rawAttachment := range activity.Relationships.Attachments.Data {
			attachment, err := LoadAttachment(rawAttachment)
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, *attachment)
		}
	}
	return attachments, nil
}

// DownloadAttachment streams an attachment's expiring URL into saveDir,
// creating the directory if needed, and records the local path on the
// attachment. Downloads are sequential, one file at a time.
func (s *Session) DownloadAttachment(attachment *Attachment, saveDir string) (string, error) {
	if err := files.CreateFolderIfNotExists(saveDir); err != nil {
		return "", err
	}

	localPath := filepath.Join(saveDir, attachment.FileName)
	resp, err := s.downloader.R().
		SetOutput(localPath).
		Get(attachment.ExpiringURL)
	if err != nil {
		return "", fmt.Errorf("failed to download attachment %q: %w", attachment.FileName, err)
	}
	if resp.StatusCode() >= 400 {
		return "", fmt.Errorf("download of attachment %q failed with status %d", attachment.FileName, resp.StatusCode())
	}

	attachment.LocalPath = localPath
	s.logger.Debug("downloaded attachment", "file", attachment.FileName, "path", localPath)
	return localPath, nil
}
