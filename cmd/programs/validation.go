package programs

import (
	"fmt"

	"github.com/h1export/h1export/pkg/shared/config"
)

// validateProgramsArgs validates the arguments provided to the programs command.
func validateProgramsArgs(cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("invalid argument(s) received, only one program handle is allowed")
	}
	if cfg.HackerOne.Username == "" {
		return fmt.Errorf("the 'username' flag or the hackerone.username config directive must be set")
	}
	return nil
}
