package show

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/h1export/h1export/internal/hackerone"
	"github.com/h1export/h1export/pkg/shared"
	"github.com/h1export/h1export/pkg/shared/config"
	"github.com/h1export/h1export/pkg/shared/console"
	"github.com/h1export/h1export/pkg/shared/errors"
	"github.com/h1export/h1export/pkg/shared/logger"
	"github.com/h1export/h1export/pkg/shared/prompt"
)

// RunOptions holds flags for the show command.
type RunOptions struct {
	Markdown bool `json:"markdown,omitempty"`
}

var (
	AppConfig   *config.Config
	Credentials prompt.CredentialProvider = prompt.Interactive{}
	opts        RunOptions

	exampleShowUsage = `  # Print a report to the screen
  h1export show --username my_api_key_name 1337

  # Print a report with markdown styling, caching the payload for later runs
  h1export show --username my_api_key_name --cache -m 1337`

	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	// ShowCmd represents the command printing a report to the terminal.
	ShowCmd = &cobra.Command{
		Use:                   "show [-m] REPORT_ID",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Example:               exampleShowUsage,
		Short:                 "Print a HackerOne report to screen with its formatting",
		RunE:                  runShowCommand,
	}
)

// Init wires config into this command.
func Init(cfg *config.Config) { AppConfig = cfg }

func runShowCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	reportID, err := validateShowArgs(AppConfig, args)
	if err != nil {
		return errors.NewCommandError(opts, fmt.Errorf("invalid show arguments: %w", err), 1)
	}

	lg := logger.NewLogger(AppConfig, "show")
	cons := console.New()

	token, err := Credentials.Fetch(fmt.Sprintf("HackerOne API key for %s", AppConfig.HackerOne.Username))
	if err != nil {
		return errors.NewCommandError(opts, err, 1)
	}

	session := hackerone.NewSession(AppConfig, lg, cons, hackerone.AuthInfo{
		Username: AppConfig.HackerOne.Username,
		Token:    token,
	})

	report, err := session.GetReport(reportID)
	if err != nil {
		lg.Error("failed to retrieve report", "id", reportID, "error", err)
		return errors.NewCommandError(opts, fmt.Errorf("failed to retrieve report %d: %w", reportID, err), 1)
	}

	if opts.Markdown {
		fmt.Println(titleStyle.Render(report.FormattedTitle))
	} else {
		fmt.Println(report.FormattedTitle)
	}
	fmt.Println(report.FormattedBody)
	return nil
}

func init() {
	ShowCmd.Flags().BoolVarP(&opts.Markdown, "markdown", "m", false, "Print the report information with markdown styling.")
	ShowCmd.Flags().BoolP("help", "h", false, "Show help for the show command.")
}
