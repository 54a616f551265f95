package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
	"github.com/Tiliavir/study-time-planner/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the study schedule",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md, pdf")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout (required for pdf)")
}

func runExport(cmd *cobra.Command, args []string) error {
	sessions := plan.Sessions()
	data := export.SessionTable(sessions)

	var (
		out []byte
		err error
	)
	switch exportFormat {
	case "csv":
		out, err = export.NewCSVExporter().Render(data)
	case "json":
		out, err = json.MarshalIndent(sessions, "", "  ")
		out = append(out, '\n')
	case "md":
		out, err = export.NewMarkdownExporter().Render(data, "Study schedule")
	case "pdf":
		if exportOutput == "" {
			handle(apperrors.Clone(apperrors.ErrValidation, "pdf export needs --output"))
		}
		out, err = export.NewPDFExporter().Render(data, "Study schedule")
	default:
		handle(apperrors.Clone(apperrors.ErrValidation, fmt.Sprintf("unknown format %q: use csv, json, md or pdf", exportFormat)))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error rendering export:", err)
		exit(2)
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(exportOutput, out, 0o644)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error writing export:", err)
		exit(2)
	}
	if exportOutput != "" {
		fmt.Printf("Exported %d session(s) to %s.\n", len(sessions), exportOutput)
	}
	return nil
}
