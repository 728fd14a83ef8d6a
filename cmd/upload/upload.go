package upload

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/h1export/h1export/internal/bugzilla"
	"github.com/h1export/h1export/internal/hackerone"
	"github.com/h1export/h1export/pkg/shared"
	"github.com/h1export/h1export/pkg/shared/config"
	"github.com/h1export/h1export/pkg/shared/console"
	"github.com/h1export/h1export/pkg/shared/errors"
	"github.com/h1export/h1export/pkg/shared/logger"
	"github.com/h1export/h1export/pkg/shared/prompt"
)

// RunOptions holds flags for the upload command.
type RunOptions struct {
	BugzillaURL string `json:"bugzilla_url,omitempty"`
}

var (
	AppConfig   *config.Config
	Credentials prompt.CredentialProvider = prompt.Interactive{}
	opts        RunOptions

	exampleUploadUsage = `  # File a report as a Bugzilla bug, attachments included
  h1export upload --username my_api_key_name 1337

  # File against a specific Bugzilla instance
  h1export upload --username my_api_key_name --bugzilla-url https://bugzilla-dev.allizom.org 1337`

	// UploadCmd represents the command exporting a report into Bugzilla.
	UploadCmd = &cobra.Command{
		Use:                   "upload [--bugzilla-url URL] REPORT_ID",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Example:               exampleUploadUsage,
		Short:                 "Upload a HackerOne report to Bugzilla",
		RunE:                  runUploadCommand,
	}
)

// Init wires config into this command.
func Init(cfg *config.Config) {
	AppConfig = cfg
	if opts.BugzillaURL == "" {
		opts.BugzillaURL = cfg.Bugzilla.URL
	}
}

func runUploadCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	reportID, err := validateUploadArgs(AppConfig, &opts, args)
	if err != nil {
		return errors.NewCommandError(opts, fmt.Errorf("invalid upload arguments: %w", err), 1)
	}

	lg := logger.NewLogger(AppConfig, "upload")
	cons := console.New()

	h1Token, err := Credentials.Fetch(fmt.Sprintf("HackerOne API key for %s", AppConfig.HackerOne.Username))
	if err != nil {
		return errors.NewCommandError(opts, err, 1)
	}
	bugzillaKey, err := Credentials.Fetch("Bugzilla API key")
	if err != nil {
		return errors.NewCommandError(opts, err, 1)
	}

	session := hackerone.NewSession(AppConfig, lg, cons, hackerone.AuthInfo{
		Username: AppConfig.HackerOne.Username,
		Token:    h1Token,
	})

	report, err := session.GetReport(reportID)
	if err != nil {
		lg.Error("failed to retrieve report", "id", reportID, "error", err)
		return errors.NewCommandError(opts, fmt.Errorf("failed to retrieve report %d: %w", reportID, err), 1)
	}
	attachments, err := session.GetAttachments(report)
	if err != nil {
		lg.Error("failed to extract attachments", "id", reportID, "error", err)
		return errors.NewCommandError(opts, fmt.Errorf("failed to extract attachments of report %d: %w", reportID, err), 1)
	}

	tracker := bugzilla.New(opts.BugzillaURL, bugzillaKey)
	bugID, err := tracker.CreateBug(bugzilla.IssueFromReport(report))
	if err != nil {
		lg.Error("failed to create bug", "error", err)
		return errors.NewCommandError(opts, fmt.Errorf("failed to create bug: %w", err), 2)
	}
	cons.Success("Created a bug with ID: %d\nURL: %s", bugID, tracker.BugURL(bugID))

	if err := uploadAttachments(session, tracker, bugID, attachments, cons); err != nil {
		lg.Error("failed to upload attachments", "bug", bugID, "error", err)
		return errors.NewCommandError(opts, err, 2)
	}
	cons.Success("Uploaded %d attachment(s) to bug: %s", len(attachments), tracker.BugURL(bugID))
	return nil
}

// uploadAttachments downloads every attachment into a temporary directory and
// attaches it to the created bug, one file at a time.
func uploadAttachments(session *hackerone.Session, tracker bugzilla.Client, bugID int, attachments []hackerone.Attachment, cons console.Notifier) error {
	if len(attachments) == 0 {
		return nil
	}

	tmpDir, err := os.MkdirTemp("", "h1_attachments")
	if err != nil {
		return fmt.Errorf("failed to create attachment directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	for i := range attachments {
		attachment := &attachments[i]
		localPath, err := session.DownloadAttachment(attachment, tmpDir)
		if err != nil {
			return err
		}
		cons.Info("Downloaded %s (%s)", attachment.FileName, attachment.FileSizeHuman)

		if err := tracker.AttachFile(bugID, localPath, attachment.FileName, attachment.ContentType); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	UploadCmd.Flags().StringVar(&opts.BugzillaURL, "bugzilla-url", "", "Bugzilla instance URL.")
	UploadCmd.Flags().BoolP("help", "h", false, "Show help for the upload command.")
}
