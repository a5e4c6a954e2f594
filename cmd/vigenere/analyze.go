package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vigenere/core"
)

// newAnalyzeCmd reports the properties of an alphabet: its symbols,
// size, and the key-space sizes it induces for small key lengths.
func newAnalyzeCmd() *cobra.Command {
	var alphabet string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Inspect an alphabet's properties",
		Example: `  vigenere analyze
  vigenere analyze --alphabet KRYPTOSABCDEFGHIJLMNQUVWXZ`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolveAlphabet(alphabet)
			if err != nil {
				return err
			}

			headerColor.Println("Alphabet analysis")
			fmt.Printf("symbols:  %s\n", a)
			fmt.Printf("size:     %d\n", a.Len())
			fmt.Printf("standard: %t\n", a.Equal(core.StandardEnglish()))

			headerColor.Println("\nKey space by key length")
			for length := 1; length <= 6; length++ {
				fmt.Printf("  length %d: %s keys\n", length, keyspaceLabel(a.Len(), length))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&alphabet, "alphabet", "a", "", "Alphabet to analyze (default from config, A-Z)")
	return cmd
}

// keyspaceLabel formats size^length, switching to scientific notation
// once the count stops being readable.
func keyspaceLabel(size, length int) string {
	total := math.Pow(float64(size), float64(length))
	if total < 1e9 {
		return fmt.Sprintf("%.0f", total)
	}
	return fmt.Sprintf("%.2e", total)
}
