package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajitpratap0/csvio/pkg/config"
	"github.com/ajitpratap0/csvio/pkg/csv"
	"github.com/ajitpratap0/csvio/pkg/logger"
)

var version = "0.1.0"

// unescapeDelimiter translates the escape sequences users can type on
// a command line (\r, \n, \t, \\) into their literal characters.
func unescapeDelimiter(s string) string {
	replacer := strings.NewReplacer(`\r`, "\r", `\n`, "\n", `\t`, "\t", `\\`, `\`)
	return replacer.Replace(s)
}

// resolveParser builds a Parser from the layered configuration:
// flag > CSVIO_* environment > config file > default.
func resolveParser(v *viper.Viper) (*csv.Parser, error) {
	cfg := config.New()
	if fd := v.GetString("field-delimiter"); fd != "" {
		cfg.FieldDelimiter = unescapeDelimiter(fd)
	}
	if rd := v.GetString("record-delimiter"); rd != "" {
		cfg.RecordDelimiter = unescapeDelimiter(rd)
	}

	p, err := csv.NewParserWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	p.SetLogger(logger.Get())
	return p, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	v := viper.New()
	v.SetEnvPrefix("CSVIO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "csvio",
		Short: "csvio - delimited-text codec and table inspector",
		Long: `csvio parses delimiter-separated text files into tables, encodes tables
back to text, and reports structural health metrics (well-formedness,
uniform field counts, blank fields, numeral purity).

Field and record delimiters are configurable strings and may be more
than one character. Defaults are "," and CRLF.`,
	}

	var configFile, logLevel string
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file with field-delimiter/record-delimiter keys")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("field-delimiter", "", `field delimiter (default ","), escapes \t \r \n allowed`)
	root.PersistentFlags().String("record-delimiter", "", `record delimiter (default CRLF), escapes \t \r \n allowed`)
	_ = v.BindPFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
		}
		return logger.Init(logger.Config{
			Level:    v.GetString("log-level"),
			Encoding: "console",
		})
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("csvio v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Status command: parse a file and print its structural metrics
	statusCmd := &cobra.Command{
		Use:   "status <file>",
		Short: "Report structural health metrics for a CSV file",
		Long: `Parse the file with the configured delimiters and print a JSON
status snapshot. Any text parses into some table; irregular structure
is reported in the snapshot, never as a parse failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParser(v)
			if err != nil {
				return err
			}

			table, err := p.ReadEntireFile(args[0])
			if err != nil {
				return err
			}

			status := p.GetStatus(table)
			out, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render status: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	root.AddCommand(statusCmd)

	// Convert command: re-delimit a file
	var outFile, outFieldDelim, outRecordDelim string
	convertCmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a CSV file with different delimiters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := resolveParser(v)
			if err != nil {
				return err
			}

			table, err := in.ReadEntireFile(args[0])
			if err != nil {
				return err
			}

			outCfg := config.New()
			if outFieldDelim != "" {
				outCfg.FieldDelimiter = unescapeDelimiter(outFieldDelim)
			}
			if outRecordDelim != "" {
				outCfg.RecordDelimiter = unescapeDelimiter(outRecordDelim)
			}
			out, err := csv.NewParserWithConfig(outCfg)
			if err != nil {
				return err
			}
			out.SetLogger(logger.Get())

			if err := out.CreateCsvFile(table, outFile); err != nil {
				return err
			}

			logger.Info("file converted",
				zap.String("input", args[0]),
				zap.String("output", outFile),
				zap.Int("records", table.NumRecords()))
			return nil
		},
	}
	convertCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file path (required)")
	convertCmd.Flags().StringVar(&outFieldDelim, "out-field-delimiter", "", "output field delimiter (default: input delimiter config)")
	convertCmd.Flags().StringVar(&outRecordDelim, "out-record-delimiter", "", "output record delimiter (default: input delimiter config)")
	_ = convertCmd.MarkFlagRequired("output")
	root.AddCommand(convertCmd)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
