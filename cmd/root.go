package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/h1export/h1export/cmd/programs"
	"github.com/h1export/h1export/cmd/show"
	"github.com/h1export/h1export/cmd/upload"
	"github.com/h1export/h1export/cmd/version"
	"github.com/h1export/h1export/pkg/shared/config"
	"github.com/h1export/h1export/pkg/shared/errors"
	"github.com/h1export/h1export/pkg/shared/files"
)

var (
	cfgFile      string
	username     string
	cacheEnabled bool
	cachePath    string

	AppConfig *config.Config

	rootCmd = &cobra.Command{
		Use:                   "h1export [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "h1export pulls vulnerability reports from HackerOne and exports them to Bugzilla.",
		Long: `h1export retrieves vulnerability disclosure reports through the HackerOne
Hacker API, displays them with their metadata, and can file them, attachments
included, as Bugzilla bugs. The API token is asked for interactively at
invocation time and is never stored.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "HackerOne API key identifier name.")
	rootCmd.PersistentFlags().BoolVar(&cacheEnabled, "cache", false, "Cache report payloads locally when possible.")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache-path", "", "Where the report cache should be saved.")

	rootCmd.AddCommand(show.ShowCmd)
	rootCmd.AddCommand(upload.UploadCmd)
	rootCmd.AddCommand(programs.ProgramsCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps failures to process exit codes.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *errors.CommandError
		if stderrors.As(err, &cmdErr) {
			return cmdErr.ExitCode
		}
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config file: %v\n", err)
		os.Exit(1)
	}

	// Command-line flags take priority over the configuration file.
	if username != "" {
		AppConfig.HackerOne.Username = username
	}
	if cacheEnabled {
		AppConfig.HackerOne.Cache.Enabled = true
	}
	if cachePath != "" {
		AppConfig.HackerOne.Cache.Path = cachePath
	}
	if expanded, err := files.ExpandPath(AppConfig.HackerOne.Cache.Path); err == nil {
		AppConfig.HackerOne.Cache.Path = expanded
	}

	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	show.Init(AppConfig)
	upload.Init(AppConfig)
	programs.Init(AppConfig)
}
