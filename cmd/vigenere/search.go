package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/vigenere/bruteforce"
	"github.com/katalvlaran/vigenere/builder"
	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/core"
	"github.com/katalvlaran/vigenere/format"
	"github.com/katalvlaran/vigenere/orchestrate"
)

func newBruteForceCmd() *cobra.Command {
	var (
		flags     transformFlags
		keyLength int
		maxCand   uint64
		workers   int
		save      bool
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "bruteforce",
		Short: "Try every key of a given length against a ciphertext",
		Long: `Enumerate the full key space of the given length in lexicographic
alphabet order and decrypt the ciphertext under each candidate. Every
candidate is reported; no plausibility scoring is applied.`,
		Example: `  vigenere bruteforce --text RIJVS --key-length 3
  vigenere bruteforce --input-file cipher.txt --key-length 2 --workers 4 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveText(flags.text, flags.inputFile)
			if err != nil {
				return err
			}
			alpha, err := resolveAlphabet(flags.alphabet)
			if err != nil {
				return err
			}
			mode := cipher.Classic
			if flags.autokey {
				mode = cipher.Autokey
			}
			if maxCand == 0 {
				maxCand = viper.GetUint64("max_candidates")
			}
			if workers == 0 {
				workers = viper.GetInt("workers")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			infoColor.Printf("Searching %d^%d keys (%s mode)\n", alpha.Len(), keyLength, mode)
			sp := startSpinner(" Trying candidate keys...")

			started := time.Now()
			set, err := bruteforce.Run(ctx, text, alpha, keyLength, mode,
				bruteforce.WithMaxCandidates(maxCand),
				bruteforce.WithWorkers(workers))
			stopSpinner(sp)

			if set == nil && err != nil {
				return err
			}
			logger.Debug("bruteforce finished",
				zap.Int("results", len(set.Results)),
				zap.Bool("incomplete", set.Incomplete),
				zap.Duration("elapsed", time.Since(started)))

			rep, rerr := format.FromBruteForce(set)
			if rerr != nil {
				return rerr
			}
			return renderReport(rep, save, outputDir, "bruteforce", err)
		},
	}

	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Ciphertext to attack")
	cmd.Flags().StringVarP(&flags.inputFile, "input-file", "i", "", "Read ciphertext from file")
	cmd.Flags().StringVarP(&flags.alphabet, "alphabet", "a", "", "Custom alphabet (default from config, A-Z)")
	cmd.Flags().BoolVar(&flags.autokey, "autokey", false, "Assume autokey mode")
	cmd.Flags().IntVarP(&keyLength, "key-length", "l", 0, "Candidate key length (required)")
	cmd.Flags().Uint64Var(&maxCand, "max-candidates", 0, "Search-space ceiling (default from config)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel workers (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the report in all formats")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Report directory (default from config)")
	_ = cmd.MarkFlagRequired("key-length")

	return cmd
}

func newOrchestrateCmd() *cobra.Command {
	var (
		flags     transformFlags
		wordsFile string
		keysFile  string
		workers   int
		save      bool
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "orchestrate",
		Short: "Decrypt a ciphertext under every alphabet×key combination",
		Long: `Build one keyed alphabet per word in the words file, parse the key
list, and decrypt the ciphertext under every (alphabet, key) pair.
Pairs whose key is invalid under an alphabet are reported in place;
the run always covers the full cross product.`,
		Example: `  vigenere orchestrate --text "ZINCS PGVNU" --words-file words.txt --keys-file keys.txt
  vigenere orchestrate -i cipher.txt --words-file words.txt --keys-file keys.txt --workers 4 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveText(flags.text, flags.inputFile)
			if err != nil {
				return err
			}
			base, err := resolveAlphabet(flags.alphabet)
			if err != nil {
				return err
			}
			alphabets, keys, err := loadCollections(wordsFile, keysFile, base)
			if err != nil {
				return err
			}
			mode := cipher.Classic
			if flags.autokey {
				mode = cipher.Autokey
			}
			if workers == 0 {
				workers = viper.GetInt("workers")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			infoColor.Printf("Running %d alphabets × %d keys (%s mode)\n", len(alphabets), len(keys), mode)
			sp := startSpinner(" Trying combinations...")

			set, err := orchestrate.Run(ctx, text, alphabets, keys, mode,
				orchestrate.WithWorkers(workers))
			stopSpinner(sp)

			if set == nil && err != nil {
				return err
			}
			logger.Debug("orchestration finished",
				zap.Int("results", len(set.Results)),
				zap.Bool("incomplete", set.Incomplete))

			rep, rerr := format.FromOrchestration(set)
			if rerr != nil {
				return rerr
			}
			return renderReport(rep, save, outputDir, "orchestrate", err)
		},
	}

	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Ciphertext to decrypt")
	cmd.Flags().StringVarP(&flags.inputFile, "input-file", "i", "", "Read ciphertext from file")
	cmd.Flags().StringVarP(&flags.alphabet, "alphabet", "a", "", "Base alphabet for keyed alphabets (default from config)")
	cmd.Flags().BoolVar(&flags.autokey, "autokey", false, "Assume autokey mode")
	cmd.Flags().StringVar(&wordsFile, "words-file", "", "File of words, one keyed alphabet per word (required)")
	cmd.Flags().StringVar(&keysFile, "keys-file", "", "File of candidate keys (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel workers (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the report in all formats")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Report directory (default from config)")
	_ = cmd.MarkFlagRequired("words-file")
	_ = cmd.MarkFlagRequired("keys-file")

	return cmd
}

// loadCollections parses the words and keys files and derives one keyed
// alphabet per word against the given base.
func loadCollections(wordsFile, keysFile string, base core.Alphabet) ([]core.Alphabet, []string, error) {
	wf, err := os.Open(wordsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening words file: %w", err)
	}
	defer wf.Close()
	words, err := builder.ParseWords(wf)
	if err != nil {
		return nil, nil, err
	}

	kf, err := os.Open(keysFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening keys file: %w", err)
	}
	defer kf.Close()
	keys, err := builder.ParseKeys(kf)
	if err != nil {
		return nil, nil, err
	}

	alphabets, err := builder.KeyedAlphabets(words, builder.WithBaseAlphabet(base))
	if err != nil {
		return nil, nil, err
	}
	return alphabets, keys, nil
}

// renderReport prints the report, optionally saves all formats, and
// surfaces a cancellation error after the partial results are shown.
func renderReport(rep *format.Report, save bool, outputDir, base string, runErr error) error {
	text, err := format.Text(rep)
	if err != nil {
		return err
	}
	fmt.Print(text)

	if rep.Incomplete {
		errorColor.Println("⚠ run interrupted; results above are partial")
	} else {
		successColor.Printf("✓ %d/%d trials succeeded\n", rep.Succeeded, rep.Total)
	}

	if save {
		if outputDir == "" {
			outputDir = viper.GetString("output_dir")
		}
		stamp := time.Now().Format("20060102-150405")
		paths, err := format.Save(rep, outputDir, base+"-"+stamp)
		if err != nil {
			return err
		}
		for _, p := range paths {
			infoColor.Printf("saved %s\n", p)
		}
	}
	return runErr
}

// startSpinner returns a running spinner, or nil when --verbose logging
// would interleave with it.
func startSpinner(suffix string) *spinner.Spinner {
	if verbose {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = suffix
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
