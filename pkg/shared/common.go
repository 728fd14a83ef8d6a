package shared

import (
	"github.com/spf13/pflag"
)

// HasFlags reports whether any flag in the set was changed on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	has := false
	flags.Visit(func(*pflag.Flag) {
		has = true
	})
	return has
}
