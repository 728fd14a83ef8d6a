package upload

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/h1export/h1export/pkg/shared/config"
)

// validateUploadArgs validates the arguments provided to the upload command
// and returns the requested report id.
func validateUploadArgs(cfg *config.Config, options *RunOptions, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("exactly one report id argument is required")
	}

	reportID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("report id %q is not numeric", args[0])
	}

	if cfg.HackerOne.Username == "" {
		return 0, fmt.Errorf("the 'username' flag or the hackerone.username config directive must be set")
	}

	if options.BugzillaURL == "" {
		options.BugzillaURL = cfg.Bugzilla.URL
	}
	if _, err := url.ParseRequestURI(options.BugzillaURL); err != nil {
		return 0, fmt.Errorf("provided Bugzilla URL is not valid: %w", err)
	}
	return reportID, nil
}
