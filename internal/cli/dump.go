package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"netquiz/internal/hexdump"
	"netquiz/internal/packet"
	"netquiz/internal/quiz"
)

// runDump builds the handler for the dump command.
func runDump(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
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

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		packetsPath := fs.String("packets", settings.PacketsPath, "Path to the packet corpus")
		index := fs.Int("packet", -1, "Corpus index of the packet")
		offset := fs.Int("offset", 0, "First highlighted byte")
		length := fs.Int("length", 0, "Number of highlighted bytes")
		noColor := fs.Bool("no-color", settings.NoColor, "Mark highlighted bytes with brackets")
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *index < 0 {
			fmt.Fprintln(stderr, "--packet is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *offset < 0 || *length < 0 {
			fmt.Fprintln(stderr, "--offset and --length must not be negative")
			return ExitUsage
		}

		corpus, err := packet.Load(*packetsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load packets: %v\n", err)
			return ExitError
		}
		record, ok := corpus.Get(*index)
		if !ok {
			fmt.Fprintf(stderr, "packet %d not found (corpus has %d packets)\n", *index, corpus.Len())
			return ExitError
		}

		var span *hexdump.Span
		if *length > 0 {
			span = &hexdump.Span{Offset: *offset, Length: *length}
		}
		styles := quiz.NewStyles(*noColor)
		fmt.Fprintf(stdout, "Packet: %s (%d bytes)\n", record.Name, len(record.Data))
		fmt.Fprintf(stdout, "Layers: %s\n", strings.Join(record.Layers(), " > "))
		fmt.Fprintln(stdout, hexdump.Render(record.Data, span, styles.Mark))
		return ExitOK
	}
}
