package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"esgboard/adapters/tabular"
	"esgboard/app"
	"esgboard/domain/workforce"
	"esgboard/internal/export"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "esgboard-cli",
		Short: "Batch access to the dashboard pipeline without the web UI",
	}

	rootCmd.AddCommand(
		newNormalizeCmd(),
		newHeadcountCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newNormalizeCmd() *cobra.Command {
	var contractsPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "normalize [employee-file]",
		Short: "Normalize an employee export to canonical CSV",
		Long: `Parse an employee export, resolve its columns and write the
normalized table as semicolon-delimited CSV in the source locale.

Example: esgboard-cli normalize export.csv --contracts contracts.xlsx -o normalized.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, pipeline, err := loadEmployees(args[0])
			if err != nil {
				return err
			}
			if contractsPath != "" {
				data, err := os.ReadFile(contractsPath)
				if err != nil {
					return err
				}
				contracts, err := pipeline.LoadContracts(filepath.Base(contractsPath), data)
				if err != nil {
					return err
				}
				table = pipeline.ApplyContracts(table, contracts)
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return export.WriteNormalizedCSV(out, table)
		},
	}

	cmd.Flags().StringVar(&contractsPath, "contracts", "", "contracts file to join on employee id")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")
	return cmd
}

func newHeadcountCmd() *cobra.Command {
	var startYear, endYear int
	var groupBy []string
	var outPath string

	cmd := &cobra.Command{
		Use:   "headcount [employee-file]",
		Short: "Export the monthly headcount matrix in long format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := loadEmployees(args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = "headcount-long.xlsx"
			}

			reports := app.NewReportService()
			matrix, err := reports.HeadcountForExport(table, app.CompBenParams{
				StartYear: startYear,
				EndYear:   endYear,
				GroupBy:   groupBy,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			return export.WriteLongFormatXLSX(f, matrix)
		},
	}

	cmd.Flags().IntVar(&startYear, "start-year", 2024, "first year of the range")
	cmd.Flags().IntVar(&endYear, "end-year", 2025, "last year of the range")
	cmd.Flags().StringSliceVar(&groupBy, "group", []string{workforce.ColCompany}, "grouping dimensions")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path")
	return cmd
}

func loadEmployees(path string) (*workforce.Table, *app.PipelineService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	pipeline := app.NewPipelineService(tabular.NewDataReader())
	table, _, err := pipeline.LoadEmployees(filepath.Base(path), data)
	if err != nil {
		return nil, nil, err
	}
	return table, pipeline, nil
}
