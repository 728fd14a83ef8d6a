package programs

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/h1export/h1export/internal/hackerone"
	"github.com/h1export/h1export/pkg/shared/config"
	"github.com/h1export/h1export/pkg/shared/console"
	"github.com/h1export/h1export/pkg/shared/errors"
	"github.com/h1export/h1export/pkg/shared/logger"
	"github.com/h1export/h1export/pkg/shared/prompt"
)

var (
	AppConfig   *config.Config
	Credentials prompt.CredentialProvider = prompt.Interactive{}

	exampleProgramsUsage = `  # List the programs visible to this API key
  h1export programs --username my_api_key_name

  # Show one program with its in-scope assets
  h1export programs --username my_api_key_name security`

	// ProgramsCmd represents the command listing bug-bounty programs.
	ProgramsCmd = &cobra.Command{
		Use:                   "programs [HANDLE]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Example:               exampleProgramsUsage,
		Short:                 "List HackerOne programs or show one program with its assets",
		RunE:                  runProgramsCommand,
	}
)

// Init wires config into this command.
func Init(cfg *config.Config) { AppConfig = cfg }

func runProgramsCommand(cmd *cobra.Command, args []string) error {
	if err := validateProgramsArgs(AppConfig, args); err != nil {
		return errors.NewCommandError(args, fmt.Errorf("invalid programs arguments: %w", err), 1)
	}

	lg := logger.NewLogger(AppConfig, "programs")
	cons := console.New()

	token, err := Credentials.Fetch(fmt.Sprintf("HackerOne API key for %s", AppConfig.HackerOne.Username))
	if err != nil {
		return errors.NewCommandError(args, err, 1)
	}

	session := hackerone.NewSession(AppConfig, lg, cons, hackerone.AuthInfo{
		Username: AppConfig.HackerOne.Username,
		Token:    token,
	})

	if len(args) == 1 {
		return showProgram(session, args[0], lg)
	}
	return listPrograms(session, lg)
}

func listPrograms(session *hackerone.Session, lg hclog.Logger) error {
	programs, err := session.ListPrograms()
	if err != nil {
		lg.Error("failed to list programs", "error", err)
		return errors.NewCommandError(nil, fmt.Errorf("failed to list programs: %w", err), 1)
	}

	for _, program := range programs {
		bounty := " "
		if program.OffersBounties {
			bounty = "$"
		}
		fmt.Printf("%s %-30s %-40s %s\n", bounty, program.Handle, program.Name, program.URL())
	}
	fmt.Printf("%d program(s)\n", len(programs))
	return nil
}

func showProgram(session *hackerone.Session, handle string, lg hclog.Logger) error {
	program, err := session.GetProgram(handle)
	if err != nil {
		lg.Error("failed to retrieve program", "handle", handle, "error", err)
		return errors.NewCommandError(handle, fmt.Errorf("failed to retrieve program %q: %w", handle, err), 1)
	}

	fmt.Printf("%s (%s)\n", program.Name, program.Handle)
	fmt.Printf("URL: %s\n", program.URL())
	fmt.Printf("State: %s, submissions %s, currency %s\n", program.State, program.SubmissionState, program.Currency)
	fmt.Printf("Offers bounties: %t, bounty splitting: %t\n", program.OffersBounties, program.AllowsBountySplitting)
	fmt.Printf("Accepting reports since: %s\n", program.StartedAcceptingAt.Format("2006-01-02"))

	if len(program.Assets) == 0 {
		fmt.Println("No in-scope assets returned")
		return nil
	}
	fmt.Printf("Assets (%d):\n", len(program.Assets))
	for _, asset := range program.Assets {
		eligibility := "not eligible for bounty"
		if asset.EligibleForBounty {
			eligibility = "eligible for bounty"
		}
		fmt.Printf("  %-25s %-45s max severity %s, %s\n", asset.Type, asset.Identifier, asset.MaxSeverity, eligibility)
	}
	return nil
}

func init() {
	ProgramsCmd.Flags().BoolP("help", "h", false, "Show help for the programs command.")
}
