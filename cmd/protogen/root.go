package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/protogen/config"
	"github.com/teranos/protogen/logger"
	"github.com/teranos/protogen/proto"
	"github.com/teranos/protogen/schema"
)

var (
	schemaPath string
	outputPath string
	orderPath  string
	jsonLogs   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "protogen",
	Short: "Generate a proto3 schema from a result-document schema",
	Long: `Generate a proto3 interface definition from a result-document schema.

protogen reads a JSON schema document (a "definitions" mapping of string
enums and object types) and emits one proto3 text document: enum and
message blocks for every definition, synthesized wrapper messages for
tuples and array-valued map entries, and the Integer/Number helper types.

Field numbers are derived from a canonical property-order table so they
stay stable across releases. Run this manually at release boundaries and
commit the output; regenerating against a reordered model silently
renumbers fields and breaks deployed clients.

Examples:
  protogen -s schema.json                      # Emit to stdout
  protogen -s schema.json -o result.proto      # Write to a file
  protogen -s schema.json --order-table order.toml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Input schema document (JSON)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVar(&orderPath, "order-table", "", "TOML file overriding the built-in field-order table")
	rootCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-definition detail")

	_ = rootCmd.MarkFlagRequired("schema")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if err := logger.InitializeWithLevel(jsonLogs, level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	table := config.DefaultOrderTable()
	if orderPath != "" {
		var err error
		table, err = config.LoadOrderTable(orderPath)
		if err != nil {
			return err
		}
		logger.Logger.Infow("loaded order table", "path", orderPath)
	}

	s, err := schema.LoadFile(schemaPath)
	if err != nil {
		return err
	}
	logger.Logger.Infow("loaded schema", "path", schemaPath, "definitions", len(s.Definitions))

	out, err := proto.NewGenerator(table).Generate(s)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	fmt.Printf("✓ Generated %s (%d definitions)\n", outputPath, len(s.Definitions))
	return nil
}
