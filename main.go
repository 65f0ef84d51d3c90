package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

var (
	settingsPath string
	templatePath string
	outputDir    string
	workers      int
	convertHTML  bool
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "zenn-importer [input-file-or-url]",
	Short: "Convert a JSON export of posts into Zenn Markdown articles",
	Long: `Reads a JSON array of {title, tags, body} records (data4.json by default)
and writes one Markdown file with Zenn front matter per record, named with a
random 20 character hex slug.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debugMode {
			SetDebugMode(true)
		}

		// Build config overrides from the flags that were set
		overrides := &ConfigOverrides{}
		if cmd.Flags().Changed("settings") {
			overrides.SettingsPath = &settingsPath
		}
		if cmd.Flags().Changed("template") {
			overrides.TemplatePath = &templatePath
		}
		if cmd.Flags().Changed("output-dir") {
			overrides.OutputDirectory = &outputDir
		}
		if cmd.Flags().Changed("workers") {
			overrides.Workers = &workers
		}
		if cmd.Flags().Changed("convert-html") {
			overrides.ConvertHTML = &convertHTML
		}
		if len(args) > 0 {
			overrides.InputFile = &args[0]
		}

		importer, err := NewArticleImporter(overrides)
		if err != nil {
			return fmt.Errorf("failed to create importer: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		results, err := importer.ImportFile(ctx, importer.InputFile())
		if err != nil {
			return importError(results, err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to settings YAML file")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "Path to custom front matter template file")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory to write articles to")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent writers (default: number of CPUs)")
	rootCmd.Flags().BoolVar(&convertHTML, "convert-html", false, "Convert HTML bodies to Markdown before writing")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// importError condenses a failed run into one line. Per-record errors have
// already been logged as they completed.
func importError(results []ProcessingResult, err error) error {
	failed := 0
	for _, result := range results {
		if result.Status == StatusError {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("import failed: %d of %d records failed", failed, len(results))
	}
	return fmt.Errorf("import failed: %w", err)
}

func singleLine(msg string) string {
	msg = strings.Join(strings.Fields(msg), " ")
	if msg == "" {
		return "error"
	}
	return msg
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, singleLine(err.Error()))
		os.Exit(1)
	}
}
