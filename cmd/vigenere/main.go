// Command vigenere is the command-line surface of the cipher engine:
// single transforms, alphabet inspection, brute-force key search, and
// alphabet×key orchestration, with reports in text/JSON/CSV/YAML.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "1.0.0"

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// Global flags
var (
	verbose bool
	noColor bool
)

// logger is a no-op unless --verbose enables development logging.
var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vigenere",
		Short:         "Polyalphabetic cipher toolkit",
		Long:          "Vigenère cipher toolkit: classic and autokey transforms over arbitrary alphabets,\nbrute-force key search, and alphabet×key orchestration.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("initializing logger: %w", err)
				}
				logger = l
			}
			return initConfig()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose (structured) logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newEncryptCmd())
	root.AddCommand(newDecryptCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newBruteForceCmd())
	root.AddCommand(newOrchestrateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// initConfig loads optional settings from $HOME/.vigenere.yaml and the
// VIGENERE_* environment. A missing config file is not an error.
func initConfig() error {
	viper.SetDefault("alphabet", "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	viper.SetDefault("output_dir", "./reports")
	viper.SetDefault("max_candidates", uint64(1<<20))
	viper.SetDefault("workers", 1)

	viper.SetEnvPrefix("VIGENERE")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	viper.SetConfigName(".vigenere")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	logger.Debug("config loaded", zap.String("file", viper.ConfigFileUsed()))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vigenere %s\n", version)
		},
	}
}
