package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/oleg578/swiftcsv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "List and load datasets",
	Long:  `List known datasets or load one through the fetch-cache-parse pipeline.`,
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known datasets",
	Args:  cobra.NoArgs,
	RunE:  runDatasetList,
}

var datasetGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Load a dataset and print its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetGet,
}

// outputFormat is a flag for the get command.
var outputFormat string

func init() {
	datasetGetCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format: table, csv, or json")

	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetGetCmd)
	rootCmd.AddCommand(datasetCmd)
}

func runDatasetList(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	infos, err := datasetService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}

	if len(infos) == 0 {
		cmd.Println("No datasets known.")
		return nil
	}

	for _, info := range infos {
		cmd.Printf("  %s\n", info.Name)
		if info.Description != "" {
			cmd.Printf("    %s\n", info.Description)
		}
		cmd.Printf("    %s\n", info.URL)
		cmd.Println()
	}
	cmd.Printf("Total: %d datasets\n", len(infos))
	return nil
}

func runDatasetGet(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	name := args[0]
	table, err := datasetService.Load(context.Background(), name)
	if err != nil {
		return fmt.Errorf("failed to load dataset %q: %w", name, err)
	}

	switch outputFormat {
	case "table":
		printTable(cmd, table)
	case "csv":
		return printCSV(cmd, table)
	case "json":
		return printJSON(cmd, table)
	default:
		return fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, outputFormat)
	}
	return nil
}

func printTable(cmd *cobra.Command, table *domain.Table) {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i])
		}
		cmd.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(table.Columns)
	for _, row := range table.Rows {
		printRow(row)
	}
	cmd.Printf("\n%d rows\n", table.Len())
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func printCSV(cmd *cobra.Command, table *domain.Table) error {
	w := swiftcsv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return err
	}
	return w.Flush()
}

func printJSON(cmd *cobra.Command, table *domain.Table) error {
	records := make([]map[string]string, 0, table.Len())
	for _, row := range table.Rows {
		rec := make(map[string]string, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
