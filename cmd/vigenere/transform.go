package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/core"
	"github.com/katalvlaran/vigenere/format"
)

// transformFileMode is the permission applied to --output-file writes.
const transformFileMode = 0o644

// transformFlags carries the shared flag set of encrypt and decrypt.
type transformFlags struct {
	key        string
	text       string
	inputFile  string
	outputFile string
	alphabet   string
	autokey    bool
	uppercase  bool
	group      int
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "Cipher key (required)")
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "Text to transform")
	cmd.Flags().StringVarP(&f.inputFile, "input-file", "i", "", "Read text from file")
	cmd.Flags().StringVarP(&f.outputFile, "output-file", "o", "", "Write result to file")
	cmd.Flags().StringVarP(&f.alphabet, "alphabet", "a", "", "Custom alphabet (default from config, A-Z)")
	cmd.Flags().BoolVar(&f.autokey, "autokey", false, "Use autokey mode")
	cmd.Flags().BoolVar(&f.uppercase, "uppercase", false, "Upper-case the input before transforming")
	cmd.Flags().IntVar(&f.group, "group", 0, "Regroup output into N-letter blocks (0 = off)")
	_ = cmd.MarkFlagRequired("key")
}

func newEncryptCmd() *cobra.Command {
	var flags transformFlags
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a Vigenère key",
		Example: `  vigenere encrypt --key SECRET --text "HELLO WORLD"
  vigenere encrypt --key SECRET --autokey --input-file plain.txt --output-file cipher.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(&flags, true)
		},
	}
	flags.register(cmd)
	return cmd
}

func newDecryptCmd() *cobra.Command {
	var flags transformFlags
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with a Vigenère key",
		Example: `  vigenere decrypt --key SECRET --text "ZINCS PGVNU"
  vigenere decrypt --key SECRET --autokey --input-file cipher.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(&flags, false)
		},
	}
	flags.register(cmd)
	return cmd
}

// runTransform executes one encrypt/decrypt invocation end to end.
func runTransform(flags *transformFlags, encrypt bool) error {
	text, err := resolveText(flags.text, flags.inputFile)
	if err != nil {
		return err
	}
	if flags.uppercase {
		text = strings.ToUpper(text)
	}

	alpha, err := resolveAlphabet(flags.alphabet)
	if err != nil {
		return err
	}
	key, err := core.NewKey(flags.key, alpha)
	if err != nil {
		return err
	}

	mode := cipher.Classic
	if flags.autokey {
		mode = cipher.Autokey
	}
	eng, err := cipher.New(key, mode)
	if err != nil {
		return err
	}

	logger.Debug("transform",
		zap.Bool("encrypt", encrypt),
		zap.String("mode", mode.String()),
		zap.Int("alphabet_len", alpha.Len()),
		zap.Int("text_len", len(text)))

	var out string
	if encrypt {
		out, err = eng.Encrypt(text)
	} else {
		out, err = eng.Decrypt(text)
	}
	if err != nil {
		return err
	}

	if flags.group > 0 {
		if out, err = format.Group(out, flags.group); err != nil {
			return err
		}
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(out), transformFileMode); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		successColor.Printf("✓ Result written to %s\n", flags.outputFile)
		return nil
	}
	fmt.Println(out)
	return nil
}

// resolveText picks the input text from --text or --input-file.
// Exactly one source must be given.
func resolveText(text, inputFile string) (string, error) {
	switch {
	case text != "" && inputFile != "":
		return "", fmt.Errorf("--text and --input-file are mutually exclusive")
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case text != "":
		return text, nil
	default:
		return "", fmt.Errorf("no input: pass --text or --input-file")
	}
}

// resolveAlphabet builds the working alphabet from the flag, falling
// back to the configured default (A-Z out of the box).
func resolveAlphabet(flag string) (core.Alphabet, error) {
	symbols := flag
	if symbols == "" {
		symbols = viper.GetString("alphabet")
	}
	return core.NewAlphabet(symbols)
}
