package console

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Notifier receives human-readable status events from the session layers.
// The CLI renders them; library code never prints directly.
type Notifier interface {
	Retry(status int, wait time.Duration)
	CacheHit(reportID int)
	CacheMiss(reportID int)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Error(format string, args ...interface{})
}

var (
	bracketStyle = lipgloss.NewStyle().Bold(true)
	errorMark    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("!")
	successMark  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("*")
	infoMark     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render("*")
)

// Console writes prefixed status lines to a terminal.
type Console struct {
	out   io.Writer
	quiet bool
}

// New creates a Console writing to stdout.
func New() *Console {
	return &Console{out: os.Stdout}
}

// NewQuiet creates a Console that suppresses all output.
func NewQuiet() *Console {
	return &Console{out: io.Discard, quiet: true}
}

func (c *Console) printf(mark, format string, args ...interface{}) {
	if c.quiet {
		return
	}
	prefix := bracketStyle.Render("[") + mark + bracketStyle.Render("]")
	fmt.Fprintf(c.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func (c *Console) Retry(status int, wait time.Duration) {
	c.printf(infoMark, "Got error %d back, retrying in %s", status, wait)
}

func (c *Console) CacheHit(reportID int) {
	c.printf(successMark, "Report %d found in local cache", reportID)
}

func (c *Console) CacheMiss(reportID int) {
	c.printf(infoMark, "Report %d not in local cache, contacting server", reportID)
}

func (c *Console) Info(format string, args ...interface{}) {
	c.printf(infoMark, format, args...)
}

func (c *Console) Success(format string, args ...interface{}) {
	c.printf(successMark, format, args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	c.printf(errorMark, format, args...)
}

// Nop is a Notifier that drops every event. Used in tests.
type Nop struct{}

func (Nop) Retry(int, time.Duration)       {}
func (Nop) CacheHit(int)                   {}
func (Nop) CacheMiss(int)                  {}
func (Nop) Info(string, ...interface{})    {}
func (Nop) Success(string, ...interface{}) {}
func (Nop) Error(string, ...interface{})   {}
