package bugzilla

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/h1export/h1export/pkg/shared/files"
)

// Client talks to a Bugzilla instance over its REST API.
type Client struct {
	httpc *resty.Client
	url   string
}

// New initializes a Bugzilla client authenticated with an API key.
func New(url string, apiKey string) Client {
	httpc := resty.New()
	httpc.SetBaseURL(url)
	httpc.SetHeader("X-BUGZILLA-API-KEY", apiKey)
	httpc.SetHeader("Content-Type", "application/json")

	return Client{
		httpc: httpc,
		url:   url,
	}
}

type createBugResult struct {
	ID int `json:"id"`
}

// CreateBug files a new bug from the given issue fields and returns its id.
func (c Client) CreateBug(issue Issue) (int, error) {
	var r createBugResult
	resp, err := c.httpc.R().
		SetBody(map[string]interface{}{
			"product":     issue.Product,
			"component":   issue.Component,
			"summary":     issue.Summary,
			"description": issue.Description,
			"groups":      issue.Groups,
			"type":        issue.Type,
			"version":     issue.Version,
		}).
		SetResult(&r).
		Post("/rest/bug")
	if err != nil {
		return 0, err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return 0, fmt.Errorf("%d on creating bug %q: %s", resp.StatusCode(), issue.Summary, resp.String())
	}
	return r.ID, nil
}

// AttachFile uploads a local file as an attachment on an existing bug.
// Bugzilla's REST API takes attachment data base64-encoded in a JSON body.
func (c Client) AttachFile(bugID int, filePath, fileName, contentType string) error {
	if err := files.ValidatePath(filePath); err != nil {
		return fmt.Errorf("attachment %q is not readable: %w", filePath, err)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read attachment %q: %w", filePath, err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := c.httpc.R().
		SetBody(map[string]interface{}{
			"ids":          []int{bugID},
			"data":         base64.StdEncoding.EncodeToString(data),
			"file_name":    fileName,
			"summary":      fileName,
			"content_type": contentType,
		}).
		Post(fmt.Sprintf("/rest/bug/%d/attachment", bugID))
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("%d on attaching %q to bug %d: %s", resp.StatusCode(), fileName, bugID, resp.String())
	}
	return nil
}

// BugURL is the web page of a bug on this instance.
func (c Client) BugURL(bugID int) string {
	return fmt.Sprintf("%s/show_bug.cgi?id=%d", c.url, bugID)
}
