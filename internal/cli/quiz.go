package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"netquiz/internal/answer"
	"netquiz/internal/bank"
	"netquiz/internal/config"
	"netquiz/internal/logging"
	"netquiz/internal/packet"
	"netquiz/internal/question"
	"netquiz/internal/quiz"
	"netquiz/internal/session"
	"netquiz/internal/ui/live"
)

var (
	loadSettings = func() (config.Settings, error) { return config.Load(config.DefaultEnvFile) }
	runLive      = live.Run
)

// quizOptions holds the flags shared by both quiz commands.
type quizOptions struct {
	count       int
	startID     int
	pinned      bool
	packetsPath string
	uiMode      string
	noColor     bool
	seed        uint64
	verbose     bool
	logPath     string
}

// variantBuilder assembles the bank, matcher and corpus for one quiz.
type variantBuilder func(opts quizOptions) (quiz.Variant, error)

func flagsVariant(quizOptions) (quiz.Variant, error) {
	questions, err := bank.TCPFlags()
	if err != nil {
		return quiz.Variant{}, err
	}
	return quiz.Variant{
		Title:   "TCP Flags Quiz",
		Bank:    questions,
		Matcher: answer.TCPFlags,
		Corpus:  packet.NewCorpus(),
	}, nil
}

func packetsVariant(opts quizOptions) (quiz.Variant, error) {
	questions, corpus, err := loadPacketBank(opts.packetsPath)
	if err != nil {
		return quiz.Variant{}, err
	}
	return quiz.Variant{
		Title:   "Packet Analysis Quiz",
		Bank:    questions,
		Matcher: answer.Plain,
		Corpus:  corpus,
	}, nil
}

// loadPacketBank loads the corpus and checks every hex location against it.
func loadPacketBank(path string) (*question.Bank, packet.Corpus, error) {
	corpus, err := packet.Load(path)
	if err != nil {
		return nil, packet.Corpus{}, fmt.Errorf("load packet corpus %s: %w", path, err)
	}
	questions, err := bank.Packets()
	if err != nil {
		return nil, packet.Corpus{}, err
	}
	if err := question.CheckPackets(questions, corpus); err != nil {
		return nil, packet.Corpus{}, err
	}
	return questions, corpus, nil
}

func runQuiz(build variantBuilder) func(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
			if wantsHelp(args) {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			settings, err := loadSettings()
			if err != nil {
				fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
				return ExitUsage
			}

			opts := quizOptions{}
			fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
			fs.SetOutput(stderr)
			fs.IntVar(&opts.count, "n", settings.Questions, "Number of questions")
			fs.IntVar(&opts.count, "num-questions", settings.Questions, "Number of questions")
			fs.IntVar(&opts.startID, "s", 0, "Question id to ask first")
			fs.IntVar(&opts.startID, "start-question", 0, "Question id to ask first")
			if cmd.Name == "packets" {
				fs.StringVar(&opts.packetsPath, "packets", settings.PacketsPath, "Path to the packet corpus")
			}
			fs.StringVar(&opts.uiMode, "ui", settings.UIMode, "UI mode: auto|live|plain")
			fs.BoolVar(&opts.noColor, "no-color", settings.NoColor, "Disable colored output")
			fs.Uint64Var(&opts.seed, "seed", settings.Seed, "Random seed (0 picks one)")
			fs.BoolVar(&opts.verbose, "verbose", false, "Log debug diagnostics")
			fs.StringVar(&opts.logPath, "log", "", "Write diagnostics to a file")
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
			fs.Visit(func(f *flag.Flag) {
				if f.Name == "s" || f.Name == "start-question" {
					opts.pinned = true
				}
			})
			if opts.count <= 0 {
				fmt.Fprintf(stderr, "question count must be positive, got %d\n", opts.count)
				return ExitUsage
			}

			logger, closeLog, err := openLogger(settings.LogLevel, opts, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
				return ExitUsage
			}
			defer closeLog()

			decision, err := resolveUIMode(opts.uiMode, opts.verbose && opts.logPath == "", stdin, stdout)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return ExitUsage
			}
			if decision.warning != "" {
				fmt.Fprintln(stderr, decision.warning)
			}

			variant, err := build(opts)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load quiz: %v\n", err)
				return ExitError
			}

			sessionOpts := session.Options{Count: opts.count}
			if opts.pinned {
				sessionOpts.PinnedID = &opts.startID
			}
			var rng *rand.Rand
			if opts.seed != 0 {
				rng = session.NewRand(opts.seed)
			}
			s, err := session.Start(variant.Bank, sessionOpts, rng)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
				return ExitError
			}
			logger = logger.With().Str("session", s.ID).Str("bank", variant.Bank.Name()).Logger()
			if opts.pinned {
				if _, ok := variant.Bank.Get(opts.startID); !ok {
					logger.Warn().Int("question_id", opts.startID).Msg("pinned question not found")
				}
			}
			logger.Debug().Int("requested", opts.count).Int("selected", s.Total()).Bool("live", decision.useLive).Msg("quiz started")

			ctx, stop := signal.NotifyContext(logging.IntoContext(context.Background(), logger), os.Interrupt)
			defer stop()

			styles := quiz.NewStyles(opts.noColor)
			if decision.useLive {
				_, err = runLive(ctx, stdin, stdout, variant, s, styles)
			} else {
				runner := quiz.Runner{Variant: variant, In: stdin, Out: stdout, Styles: styles, Pause: true}
				_, err = runner.Run(ctx, s)
			}
			switch {
			case errors.Is(err, quiz.ErrInterrupted):
				fmt.Fprintln(stdout, "\nQuiz terminated by user.")
				return ExitOK
			case err != nil:
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
	}
}

// openLogger builds the diagnostic logger. Diagnostics go to stderr unless
// a log file is named.
func openLogger(level string, opts quizOptions, stderr io.Writer) (zerolog.Logger, func(), error) {
	if opts.verbose {
		level = "debug"
	}
	out := stderr
	closeLog := func() {}
	noColor := opts.noColor
	if opts.logPath != "" {
		file, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closeLog, fmt.Errorf("open log file: %w", err)
		}
		out = file
		noColor = true
		closeLog = func() { _ = file.Close() }
	}
	logger, err := logging.New(out, level, noColor)
	if err != nil {
		closeLog()
		return zerolog.Nop(), func() {}, err
	}
	return logger, closeLog, nil
}
