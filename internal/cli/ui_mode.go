package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether to enable the live UI. The live quiz
// reads keys, so both stdin and stdout must be terminals. Verbose logging
// shares the screen and forces plain output.
func resolveUIMode(mode string, verbose bool, stdin, stdout any) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	interactive := isTerminal(stdin) && isTerminal(stdout)
	switch normalized {
	case "auto":
		return uiModeDecision{useLive: interactive && !verbose}, nil
	case "live":
		if verbose {
			return uiModeDecision{
				useLive: false,
				warning: "Live UI disabled while --verbose logs to the terminal; using plain output.",
			}, nil
		}
		if interactive {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{
			useLive: false,
			warning: "Live UI requested but the terminal is not interactive; falling back to plain output.",
		}, nil
	case "plain":
		return uiModeDecision{useLive: false}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
