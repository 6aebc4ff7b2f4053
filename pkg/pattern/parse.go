package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrMalformedPattern reports a character other than '0'/'1' or a row
	// whose length differs from the first row.
	ErrMalformedPattern = errors.New("pattern: malformed")
	// ErrEmptyPattern reports input without any non-blank line.
	ErrEmptyPattern = errors.New("pattern: empty")
	// ErrPatternFileNotFound reports a missing pattern file.
	ErrPatternFileNotFound = errors.New("pattern: file not found")
)

// Parse parses a pattern from text.
func Parse(text string) (Pattern, error) {
	return Read(strings.NewReader(text))
}

// Read parses a pattern from r. The first non-blank line fixes the width.
func Read(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		row := strings.TrimSpace(sc.Text())
		if row == "" {
			continue
		}
		if p.h == 0 {
			p.w = len(row)
		} else if len(row) != p.w {
			return Pattern{}, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrMalformedPattern, line, len(row), p.w)
		}
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case '0':
				p.cells = append(p.cells, false)
			case '1':
				p.cells = append(p.cells, true)
			default:
				return Pattern{}, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrMalformedPattern, line, i+1, row[i])
			}
		}
		p.h++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	if p.h == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	return p, nil
}

// Load reads a pattern file from disk.
func Load(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Pattern{}, fmt.Errorf("%w: %s: %w", ErrPatternFileNotFound, path, err)
		}
		return Pattern{}, err
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteTo writes p in file form, one row per line.
func (p Pattern) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String()+"\n")
	return int64(n), err
}

// Save writes p to path, replacing any existing file.
func Save(path string, p Pattern) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
