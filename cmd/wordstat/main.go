package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/wordstat/internal/app"
	"github.com/chriscorrea/wordstat/internal/config"
	"github.com/chriscorrea/wordstat/internal/counter"
	"github.com/chriscorrea/wordstat/internal/report"
	"github.com/chriscorrea/wordstat/internal/source"

	"github.com/spf13/cobra"
)

const (
	noSelectionNotice       = "No file selected."
	unsupportedFormatNotice = "Unsupported file format. Please select a PDF or DOCX file."
)

// buildConfig constructs an app.Config from the config file, command flags, and arguments.
// Flags the user set explicitly override values from the config file.
func buildConfig(cmd *cobra.Command, args []string, fileCfg *config.Config) (app.Config, error) {
	flags := cmd.Flags()

	formatName := fileCfg.Format
	noColor := fileCfg.NoColor
	quiet := fileCfg.Quiet
	topWords := fileCfg.TopWords
	countNames := fileCfg.Counts
	useStem := fileCfg.Stem

	// determine output format; flags are mutually exclusive
	switch {
	case flags.Changed("text"):
		formatName = "text"
	case flags.Changed("json"):
		formatName = "json"
	case flags.Changed("yaml"):
		formatName = "yaml"
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return app.Config{}, err
	}

	if flags.Changed("no-color") {
		noColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("quiet") {
		quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("top") {
		topWords, _ = flags.GetInt("top")
	}
	if topWords < 0 {
		return app.Config{}, fmt.Errorf("--top must not be negative, got %d", topWords)
	}
	if flags.Changed("count") {
		countNames, _ = flags.GetStringSlice("count")
	}
	if flags.Changed("stem") {
		useStem, _ = flags.GetBool("stem")
	}
	debug, _ := flags.GetBool("debug")

	counts := make([]counter.CountingMethod, 0, len(countNames))
	for _, name := range countNames {
		method, err := counter.ParseMethod(name)
		if err != nil {
			return app.Config{}, err
		}
		counts = append(counts, method)
	}

	// a single positional argument is the selected file; none means no selection
	var selected string
	if len(args) > 0 {
		selected = args[0]
	}

	return app.Config{
		Source:   selected,
		Format:   format,
		NoColor:  noColor,
		TopWords: topWords,
		Counts:   counts,
		Stem:     useStem,
		Quiet:    quiet,
		Debug:    debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "wordstat [file]",
	Short: "Word count and readability statistics for PDF and DOCX files",
	Long: `Wordstat extracts the text of a PDF or DOCX document and reports descriptive statistics: word, sentence, and paragraph counts, averages, word frequency, and the longest and shortest words.

Examples:
  wordstat thesis.pdf
  wordstat --json --top 10 essay.docx
  wordstat --count characters,tokens --stem report.pdf`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		// configure logging pending debug flag, before the config file is read
		setupLogger(debug)

		configPath, _ := cmd.Flags().GetString("config")
		var fileCfg *config.Config
		if configPath != "" {
			// an explicitly named config file must load
			var err error
			fileCfg, err = config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
		} else {
			fileCfg = config.LoadConfigOrDefault("")
		}

		cfg, err := buildConfig(cmd, args, fileCfg)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, cfg)
		if errors.Is(err, source.ErrNoSelection) {
			// nothing to do; report it and exit cleanly
			fmt.Fprintln(os.Stderr, noSelectionNotice)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Print(result)
		return nil
	},
}

func init() {
	addFlags(rootCmd)
}

// addFlags registers the command-line flags on cmd.
func addFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a YAML config file (default: ./.wordstat.yaml or ~/.config/wordstat/config.yaml)")

	// output format flags
	cmd.Flags().Bool("text", false, "Output as labeled plain text (default)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("yaml", false, "Output in YAML format")

	// output format flags are mutually exclusive
	cmd.MarkFlagsMutuallyExclusive("text", "json", "yaml")

	// optional report sections
	cmd.Flags().IntP("top", "n", 0, "List the N most frequent words")
	cmd.Flags().StringSlice("count", nil, "Additional counts: words, characters, tokens, sentences")
	cmd.Flags().Bool("stem", false, "Report the most frequent word stem")

	// other flags
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress messages")
	cmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, source.ErrUnsupportedFormat) {
			fmt.Fprintln(os.Stderr, unsupportedFormatNotice)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
