// Command anagram prints every multi-word anagram of a phrase, one per line.
//
//	anagram [-config file] [-wordlist path] [-min n] [-max n] "some phrase"
//
// Results stream as the search finds them; -max stops the search early after
// that many results.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/maugrim/anagrammator"
	"github.com/maugrim/anagrammator/wordlist"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	wordListPath := flag.String("wordlist", "", "path to the word list")
	minWordLength := flag.Int("min", 0, "minimum dictionary word length")
	maxResults := flag.Int("max", 0, "stop after this many results (0 = all)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: anagram [flags] \"phrase\"")
		flag.PrintDefaults()
		os.Exit(2)
	}
	phrase := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *wordListPath != "" {
		cfg.WordList = *wordListPath
	}
	if *minWordLength > 0 {
		cfg.MinWordLength = *minWordLength
	}
	if *maxResults > 0 {
		cfg.MaxResults = *maxResults
	}

	dict, err := loadDictionary(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	count := 0
	for result := range dict.Anagrams(phrase) {
		fmt.Fprintln(out, result)
		count++
		if cfg.MaxResults > 0 && count >= cfg.MaxResults {
			break
		}
	}
}

func loadDictionary(cfg *config) (*anagram.Dictionary, error) {
	f, err := wordlist.OpenFile(cfg.WordList)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	dict := anagram.NewDictionary(cfg.WordList, cfg.MinWordLength)
	if err := dict.LoadWordReader(f); err != nil {
		return nil, fmt.Errorf("loading word list %s: %w", cfg.WordList, err)
	}
	return dict, nil
}
