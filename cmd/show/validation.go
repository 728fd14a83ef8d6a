package show

import (
	"fmt"
	"strconv"

	"github.com/h1export/h1export/pkg/shared/config"
)

// validateShowArgs validates the arguments provided to the show command and
// returns the requested report id.
func validateShowArgs(cfg *config.Config, args []string) (int, error) {
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
	return reportID, nil
}
