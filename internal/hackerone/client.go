package hackerone

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/h1export/h1export/pkg/shared/config"
	"github.com/h1export/h1export/pkg/shared/console"
	"github.com/h1export/h1export/pkg/shared/httpclient"
)

// AuthInfo holds authentication details for the Hacker API.
type AuthInfo struct {
	Username string // API key identifier name
	Token    string // API token for basic authentication
}

// Client issues authenticated requests against the versioned Hacker API.
type Client struct {
	HTTPClient *resty.Client
	BaseURL    string
	Version    string
	RetryTime  time.Duration
	Logger     hclog.Logger
	Console    console.Notifier
}

// NewClient initializes an API client. Every request carries basic auth and
// JSON content-type/accept headers. Resty's own retry stays disabled; the
// retry policy lives in Get.
func NewClient(globalConfig *config.Config, logger hclog.Logger, notifier console.Notifier, auth AuthInfo) *Client {
	httpc := httpclient.InitializeRestyClient(logger, globalConfig)
	httpc.
		SetBasicAuth(auth.Username, auth.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		HTTPClient: httpc,
		BaseURL:    globalConfig.HackerOne.BaseURL,
		Version:    globalConfig.HackerOne.Version,
		RetryTime:  time.Duration(globalConfig.HackerOne.RetryTime),
		Logger:     logger,
		Console:    notifier,
	}
}

// apiURL generates the full API URL for an endpoint.
func (c *Client) apiURL(endpoint string) string {
	return fmt.Sprintf("%s/%s/%s", c.BaseURL, c.Version, endpoint)
}

// Get fetches an API endpoint and returns the raw JSON body.
//
// Retry policy: any status other than 200 and 403 is treated as transient
// (rate limiting included) and retried after RetryTime, indefinitely, with a
// notification per attempt. A 403 is an authorization failure the API never
// recovers from: it fails immediately with ErrPermissionDenied and is never
// retried.
func (c *Client) Get(endpoint string, queryParams map[string]string) (json.RawMessage, error) {
	url := c.apiURL(endpoint)

	var body json.RawMessage
	operation := func() error {
		resp, err := c.HTTPClient.R().
			SetQueryParams(queryParams).
			Get(url)
		if err != nil {
			return fmt.Errorf("request to %s failed: %w", url, err)
		}

		switch resp.StatusCode() {
		case http.StatusOK:
			body = append(json.RawMessage(nil), resp.Body()...)
			return nil
		case http.StatusForbidden:
			return backoff.Permanent(ErrPermissionDenied)
		default:
			return &transientError{Status: resp.StatusCode()}
		}
	}

	notify := func(err error, wait time.Duration) {
		var transient *transientError
		if errors.As(err, &transient) {
			c.Console.Retry(transient.Status, wait)
		}
		c.Logger.Debug("retrying API request", "url", url, "error", err, "wait", wait)
	}

	if err := backoff.RetryNotify(operation, backoff.NewConstantBackOff(c.RetryTime), notify); err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			c.Console.Error("Permission denied. That resource is not accessible with this API key. HTTP Error 403")
		}
		return nil, err
	}
	return body, nil
}
