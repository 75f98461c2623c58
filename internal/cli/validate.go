package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"netquiz/internal/bank"
	"netquiz/internal/packet"
	"netquiz/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		settings, err := loadSettings()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
			return ExitUsage
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		packetsPath := flags.String("packets", settings.PacketsPath, "Path to the packet corpus")
		bankPath := flags.String("bank", "", "Extra question bank file (YAML or JSON) to check")
		if err := flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		flagBank, err := bank.TCPFlags()
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		packetBank, corpus, err := loadPacketBank(*packetsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		var extra *question.Bank
		if *bankPath != "" {
			extra, err = loadBankFile(*bankPath, corpus)
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
		}

		fmt.Fprintf(stdout, "%s: %d questions\n", flagBank.Name(), flagBank.Len())
		fmt.Fprintf(stdout, "%s: %d questions against %d packets\n", packetBank.Name(), packetBank.Len(), corpus.Len())
		if extra != nil {
			fmt.Fprintf(stdout, "%s: %d questions\n", extra.Name(), extra.Len())
		}
		fmt.Fprintln(stdout, "Question banks OK")
		return ExitOK
	}
}

// loadBankFile loads a question bank file named after its base name and
// checks its packet references against corpus.
func loadBankFile(path string, corpus packet.Corpus) (*question.Bank, error) {
	spec, err := question.LoadSpec(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	extra, err := question.NewBank(name, spec.Questions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := question.CheckPackets(extra, corpus); err != nil {
		return nil, err
	}
	return extra, nil
}
