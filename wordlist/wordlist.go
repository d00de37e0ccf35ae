// Package wordlist streams dictionary words from newline-delimited word
// lists, the format of /usr/share/dict/words and most downloadable lexica.
package wordlist

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/exp/mmap"

	"github.com/maugrim/anagrammator"
)

// Reader streams words from newline-delimited word list data. It implements
// anagram.WordReader.
//
// Blank lines and lines starting with '#' are skipped; surrounding space is
// trimmed and words are folded to lower case.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next word from the list.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.ToLower(line), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// LoadWords parses newline-delimited word list data and returns a
// ready-to-use dictionary with the default eligibility threshold.
func LoadWords(name string, reader io.Reader) (*anagram.Dictionary, error) {
	return anagram.LoadWordReader(name, NewReader(reader))
}

// File is a word list file opened through a memory-mapped reader, so large
// lexica are paged in on demand rather than copied into the heap.
type File struct {
	*Reader
	mapping *mmap.ReaderAt
}

// OpenFile memory-maps a word list file. The caller must Close the returned
// File once the dictionary is built.
func OpenFile(path string) (*File, error) {
	mapping, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{
		Reader:  NewReader(io.NewSectionReader(mapping, 0, int64(mapping.Len()))),
		mapping: mapping,
	}, nil
}

// Close releases the file mapping.
func (f *File) Close() error {
	return f.mapping.Close()
}

// LoadFile builds a dictionary from a word list file with the default
// eligibility threshold. I/O failures propagate to the caller.
func LoadFile(path string) (*anagram.Dictionary, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return anagram.LoadWordReader(filepath.Base(path), f)
}
