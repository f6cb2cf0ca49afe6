package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bgrewell/iso-probe"
	"github.com/bgrewell/iso-probe/pkg/logging"
	"github.com/bgrewell/iso-probe/pkg/option"
	"github.com/bgrewell/usage"
	"github.com/go-logr/logr"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

var (
	version = "dev"
)

// truncateString truncates the input string to the specified max length.
// If truncation occurs, it prepends "..." to indicate the string has been shortened.
func truncateString(input string, maxLength int) string {
	if len(input) <= maxLength {
		return input
	}
	if maxLength <= 3 {
		return input[len(input)-maxLength:]
	}
	return "..." + input[len(input)-(maxLength-3):]
}

// InitializeSpinner sets up and starts the yacspin spinner.
func InitializeSpinner(message string) (*yacspin.Spinner, error) {
	settings := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		ShowCursor:        false,
		CharSet:           yacspin.CharSets[14],
		Colors:            []string{"fgHiCyan"},
		StopColors:        []string{"fgHiGreen"},
		StopFailColors:    []string{"fgHiRed"},
		StopFailCharacter: "✗",
		StopCharacter:     "✓",
		Message:           message,
	}

	spinner, err := yacspin.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}
	if err := spinner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start spinner: %w", err)
	}
	return spinner, nil
}

type jsonOutput struct {
	Report *iso.Report `json:"report,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func printReport(w io.Writer, report *iso.Report) {
	fmt.Fprintf(w, "Image:        %s\n", report.Path)
	fmt.Fprintf(w, "Filesystems:  %s\n", report.Filesystems())
	fmt.Fprintf(w, "Descriptors:  %d (terminated: %t)\n", report.DescriptorCount, report.Terminated)
	for _, e := range report.Descriptors {
		fmt.Fprintf(w, "  [%3d] sector %-6d %-14s %s\n",
			e.Index, report.StartSector+int64(e.Index), e.Header.Type(), e.Header.Identifier())
	}
	if report.UDF != nil {
		fmt.Fprintf(w, "UDF bridge:   %s\n", report.UDF)
	}
}

func main() {
	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Enable verbose (debug) logging", "optional", nil)
	trace := u.AddBooleanOption("t", "trace", false, "Enable trace logging", "optional", nil)
	asJSON := u.AddBooleanOption("j", "json", false, "Print the report as JSON", "optional", nil)
	quiet := u.AddBooleanOption("q", "quiet", false, "Disable the progress spinner", "optional", nil)
	path := u.AddArgument(1, "iso-path", "Path to the ISO image to probe", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		fmt.Println("isoprobe " + version)
		u.PrintUsage()
		os.Exit(0)
	}

	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("location of the iso file <iso-path> must be provided"))
		os.Exit(1)
	}

	logger := logr.Discard()
	if *verbose || *trace {
		useColor := term.IsTerminal(int(os.Stderr.Fd()))
		logger = logging.NewSimpleLogger(os.Stderr, logging.VerbosityFromFlags(*verbose, *trace), useColor)
	}

	// The spinner only makes sense on an interactive terminal with nothing else writing to it.
	var spinner *yacspin.Spinner
	if !*quiet && !*asJSON && !*verbose && !*trace && term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = 80
		}
		available := width - 16
		if available < 10 {
			available = 10
		}
		spinner, err = InitializeSpinner(" probing " + truncateString(*path, available))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize spinner: %v\n", err)
		}
	}

	report, err := iso.Probe(*path, option.WithLogger(logger))

	if spinner != nil {
		if err != nil {
			spinner.StopFailMessage(" probe failed")
			_ = spinner.StopFail()
		} else {
			spinner.StopMessage(" " + report.Filesystems())
			_ = spinner.Stop()
		}
	}

	if *asJSON {
		out := jsonOutput{Report: report}
		if err != nil {
			out.Error = err.Error()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(out); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", encErr)
			os.Exit(1)
		}
	} else if report != nil && report.Result != nil {
		printReport(os.Stdout, report)
	}

	if err != nil {
		if !*asJSON {
			u.PrintError(err)
		}
		os.Exit(1)
	}
}
