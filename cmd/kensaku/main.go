// Command kensaku builds suffix trees over the given texts and validates
// the trees against naive string search.
//
// Texts are taken from the positional arguments and from files named with
// --file; with no input at all a set of built-in cases is run. The command
// exits with status 1 on the first text whose tree fails validation.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zubayear/kensaku/set"
	"github.com/Zubayear/kensaku/suffixtree"
)

// builtinTexts are exercised when no text is given on the command line.
var builtinTexts = []string{
	"",
	"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
	"abracadabra",
	"bringst du opi opium bringt opium den opi um",
	"der inder in der inderin drin",
	"bismarck biss mark, bis mark bismarck biss",
}

// absentStrings are expected not to occur in ordinary inputs; the harness
// only requires the tree to agree with a naive scan about them.
var absentStrings = []string{
	"zoeglfrex",
	"kraxlburg",
	"qvnts",
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "kensaku [text]...",
		Short: "Build suffix trees over the given texts and validate them",
		Long: `kensaku builds a suffix tree over every given text and checks the tree
against naive string search: every suffix must be recognized as a terminal
suffix, every substring must be found at exactly the positions a linear
scan finds it, and the suffix links must be structurally valid.

Texts are taken from the positional arguments; --file reads a text from a
file instead and may be repeated. Without any input a built-in set of
cases is run.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := append([]string{}, args...)
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					logger.Error("reading input file failed", zap.String("path", path), zap.Error(err))
					return err
				}
				texts = append(texts, string(data))
			}
			if len(texts) == 0 {
				texts = builtinTexts
			}
			return runTexts(logger, texts)
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "read a text from a file (repeatable)")
	return cmd
}

func runTexts(logger *zap.Logger, texts []string) error {
	seen := set.NewUnorderedSet[string]()
	for _, text := range texts {
		if seen.Contain(text) {
			logger.Info("skipping duplicate input", zap.String("text", describe(text)))
			continue
		}
		seen.Insert(text)
		logger.Info("testing text", zap.String("text", describe(text)))
		if err := validateText(text); err != nil {
			logger.Error("validation failed",
				zap.String("text", describe(text)), zap.Error(err))
			return err
		}
	}
	logger.Info("all inputs validated")
	return nil
}

// describe names an input in diagnostics. Inputs of up to 50 bytes are
// quoted in full; longer ones are named by their size only, with no excerpt
// of the text.
func describe(text string) string {
	if len(text) <= 50 {
		return fmt.Sprintf("%q", text)
	}
	return fmt.Sprintf("text of size %d", len(text))
}

// validateText builds a tree over text and cross-checks every query
// surface against a naive scan of the text.
func validateText(text string) error {
	tree := suffixtree.NewSuffixTree()
	if err := tree.SetText(text); err != nil {
		return err
	}
	if got := tree.GetText(); got != text {
		return fmt.Errorf("tree returns text %q for input %q", got, text)
	}
	if err := checkSuffixes(tree, text); err != nil {
		return err
	}
	if err := checkSubstrings(tree, text); err != nil {
		return err
	}
	if err := checkAbsent(tree, text); err != nil {
		return err
	}
	return tree.CheckSuffixLinks()
}

func checkSuffixes(tree *suffixtree.SuffixTree, text string) error {
	for i := 0; i <= len(text); i++ {
		if !tree.EndsWith(text[i:]) {
			return fmt.Errorf("suffix %q not recognized", text[i:])
		}
	}
	return nil
}

func checkSubstrings(tree *suffixtree.SuffixTree, text string) error {
	for i := 0; i < len(text); i++ {
		for j := i + 1; j <= len(text); j++ {
			substring := text[i:j]
			if !tree.Contains(substring) {
				return fmt.Errorf("substring %q not contained", substring)
			}
			got := tree.FindSorted(substring)
			want := naiveSearch(text, substring)
			if !equalPositions(got, want) {
				return fmt.Errorf("occurrences of %q: tree reports %v, scan finds %v",
					substring, got, want)
			}
		}
	}
	return nil
}

func checkAbsent(tree *suffixtree.SuffixTree, text string) error {
	for _, substring := range absentStrings {
		inText := strings.Contains(text, substring)
		occurrences := tree.Find(substring)
		if inText && len(occurrences) == 0 {
			return fmt.Errorf("%q is in the text but not in the tree", substring)
		}
		if !inText && len(occurrences) > 0 {
			return fmt.Errorf("%q is in the tree but not in the text", substring)
		}
	}
	return nil
}

// naiveSearch returns every start index of substring in text, ascending.
func naiveSearch(text, substring string) []int {
	var positions []int
	for from := 0; ; {
		idx := strings.Index(text[from:], substring)
		if idx < 0 {
			return positions
		}
		positions = append(positions, from+idx)
		from += idx + 1
	}
}

func equalPositions(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
