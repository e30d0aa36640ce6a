package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/orbitwatch/orbitwatch/pkg/logging"
)

var (
	exportFlagFormat string
	exportFlagWhat   string
	exportFlagOutput string
	exportFlagPretty bool
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export constellation data to a file",
	Long: `Export fetches the upstream feeds once, reconciles them, and writes
the result to a file or stdout.

Supported datasets:
  - satellites: the reconciled satellite catalog
  - launches:   the merged launch history
  - stats:      aggregate constellation statistics
  - fun-facts:  the derived fun fact list`,
	Example: `  orbitwatch export --what satellites
  orbitwatch export --what stats --format yaml
  orbitwatch export -w launches -o launches.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "f", "json", "Export format: json or yaml")
	exportCmd.Flags().StringVarP(&exportFlagWhat, "what", "w", "satellites", "Dataset: satellites, launches, stats, or fun-facts")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportFlagPretty, "pretty", true, "Pretty print JSON output")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc := newService()

	var (
		data any
		err  error
	)
	switch exportFlagWhat {
	case "satellites":
		data, err = svc.Satellites(ctx)
	case "launches":
		data, err = svc.Launches(ctx)
	case "stats":
		data, err = svc.Stats(ctx)
	case "fun-facts":
		data, err = svc.FunFacts(ctx)
	default:
		return fmt.Errorf("unknown dataset %q, expected satellites, launches, stats, or fun-facts", exportFlagWhat)
	}
	if err != nil {
		return fmt.Errorf("fetching %s: %w", exportFlagWhat, err)
	}

	var out []byte
	switch exportFlagFormat {
	case "json":
		if exportFlagPretty {
			out, err = json.MarshalIndent(data, "", "  ")
		} else {
			out, err = json.Marshal(data)
		}
	case "yaml":
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("unknown format %q, expected json or yaml", exportFlagFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", exportFlagWhat, err)
	}

	if exportFlagOutput == "" {
		fmt.Println(string(out))
		return nil
	}

	if err := os.WriteFile(exportFlagOutput, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", exportFlagOutput, err)
	}
	logging.Info().
		Str("dataset", exportFlagWhat).
		Str("file", exportFlagOutput).
		Msg("export written")
	return nil
}
