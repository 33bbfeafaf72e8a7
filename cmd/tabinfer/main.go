// Command tabinfer runs the column type inference engine against a
// delimiter-separated file, and can optionally load the resulting
// schema_sql into a live MySQL database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tabinfer/internal/config"
	"tabinfer/internal/engine"
	csvingest "tabinfer/internal/ingest/csv"
	"tabinfer/internal/load"
	"tabinfer/internal/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabinfer",
		Short: "Column type inference for delimiter-separated data",
	}

	rootCmd.AddCommand(newInferCmd())
	rootCmd.AddCommand(newLoadCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInferCmd() *cobra.Command {
	var (
		delimiter  string
		format     string
		configPath string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "infer <file>",
		Short: "Infer per-column types, statistics and a suggested schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.ParseFile(configPath)
				if err != nil {
					return fmt.Errorf("tabinfer: load config: %w", err)
				}
				cfg = loaded
			}
			if workers > 0 {
				cfg.Engine.Workers = workers
			}

			opts := csvingest.Options{}
			if delimiter != "" {
				opts.Delimiter = []rune(delimiter)[0]
			}

			columns, err := csvingest.LoadFile(args[0], opts)
			if err != nil {
				return fmt.Errorf("tabinfer: load input: %w", err)
			}

			var exec engine.Executor
			if cfg.Engine.Workers > 1 {
				exec = engine.NewWorkerPoolExecutor(cfg.Engine.Workers)
			}

			results, schemaSQL := engine.AnalyzeWithConfig(columns, exec, cfg)

			formatter, err := report.NewFormatter(format)
			if err != nil {
				return err
			}
			out, err := formatter.Format(results, schemaSQL)
			if err != nil {
				return fmt.Errorf("tabinfer: format report: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Field delimiter (defaults to comma)")
	cmd.Flags().StringVarP(&format, "format", "o", "human", "Output format: human, json, or sql")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a tabinfer.toml overriding engine thresholds")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of goroutines to analyze columns with (default: sequential)")

	return cmd
}

func newLoadCmd() *cobra.Command {
	var (
		dsn                   string
		dryRun                bool
		transaction           bool
		allowNonTransactional bool
		unsafe                bool
		skipConfirmation      bool
	)

	cmd := &cobra.Command{
		Use:   "load <schema.sql>",
		Short: "Preflight-check and execute a schema_sql file against a live MySQL database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("tabinfer: read schema file: %w", err)
			}

			loader := load.NewLoader(load.Options{
				DSN:                   dsn,
				FilePath:              args[0],
				DryRun:                dryRun,
				Transaction:           transaction,
				AllowNonTransactional: allowNonTransactional,
				Unsafe:                unsafe,
				SkipConfirmation:      skipConfirmation,
				Out:                   cmd.OutOrStdout(),
				In:                    cmd.InOrStdin(),
			})

			statements := loader.ParseStatements(string(content))
			preflight := loader.PreflightChecks(statements, unsafe)

			ctx := context.Background()
			if !dryRun {
				if err := loader.Connect(ctx); err != nil {
					return fmt.Errorf("tabinfer: connect: %w", err)
				}
				defer loader.Close()
			}

			return loader.Load(ctx, statements, preflight)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "MySQL DSN, e.g. user:pass@tcp(127.0.0.1:3306)/dbname")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print preflight checks without executing")
	cmd.Flags().BoolVar(&transaction, "transaction", true, "Wrap execution in a single transaction when possible")
	cmd.Flags().BoolVar(&allowNonTransactional, "allow-non-transactional", false, "Allow statements that cannot run inside a transaction")
	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "Allow destructive statements (DROP, TRUNCATE, DELETE without WHERE)")
	cmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip the interactive confirmation prompt")

	return cmd
}
