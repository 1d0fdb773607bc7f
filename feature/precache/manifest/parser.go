package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

// MaxLineLength is the longest manifest line in bytes, terminator included.
const MaxLineLength = 255

var (
	// ErrManifestUnavailable is returned when the manifest file cannot be opened.
	ErrManifestUnavailable = zerr.New("manifest unavailable")
	// ErrLineTooLong marks an entry longer than MaxLineLength-1 bytes.
	ErrLineTooLong = zerr.New("manifest line too long")
	// ErrAssetMissing marks an entry that exists under neither content root.
	ErrAssetMissing = zerr.New("asset not found")
)

// Checker reports whether a relative asset path exists.
type Checker interface {
	Exists(rel string) (bool, error)
}

// Rejection describes an entry that was logged and left out of the table.
type Rejection struct {
	// Line is the 1-based manifest line number.
	Line int `json:"line"`
	// Path is the entry as written in the manifest.
	Path string `json:"path"`
	// Reason is the error message.
	Reason string `json:"reason"`
}

// Stats summarises a parse.
type Stats struct {
	// Accepted is the number of entries added to the table.
	Accepted int `json:"accepted"`
	// Skipped counts comments, blank lines and entries without an extension.
	Skipped int `json:"skipped"`
	// Rejections lists entries that failed validation.
	Rejections []Rejection `json:"rejections"`
	// Truncated is set when the table filled up before the end of the manifest.
	Truncated bool `json:"truncated"`
}

// Rejected returns the number of rejected entries.
func (s Stats) Rejected() int {
	return len(s.Rejections)
}

// Parser reads manifests into tables.
type Parser struct {
	checker Checker
	logger  *zap.Logger
}

// NewParser creates a parser that filters entries through checker.
func NewParser(checker Checker, logger *zap.Logger) *Parser {
	return &Parser{checker: checker, logger: logger}
}

// Load opens the manifest at path and parses it into table.
// The table is emptied first, including when the file cannot be opened.
func (p *Parser) Load(path string, table *Table) (Stats, error) {
	table.Reset()

	f, err := os.Open(path)
	if err != nil {
		p.logger.Error("Could not open manifest", zap.String("path", path), zap.Error(err))
		return Stats{}, zerr.With(fmt.Errorf("%w: %w", ErrManifestUnavailable, err), "path", path)
	}
	defer f.Close()

	return p.Parse(f, table)
}

// Parse reads manifest lines from r into table.
// The table is emptied first; entries are added in file order until it is full.
func (p *Parser) Parse(r io.Reader, table *Table) (Stats, error) {
	table.Reset()

	var stats Stats
	reader := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, fmt.Errorf("failed to read manifest: %w", err)
		}
		if raw == "" && err != nil {
			break
		}

		p.parseLine(lineNo, raw, table, &stats)
		if stats.Truncated || err != nil {
			break
		}
	}

	return stats, nil
}

func (p *Parser) parseLine(lineNo int, raw string, table *Table, stats *Stats) {
	if isComment(raw) {
		stats.Skipped++
		return
	}

	if table.Full() {
		stats.Truncated = true
		p.logger.Warn("Precache table full, ignoring remaining entries",
			zap.Int("capacity", Capacity), zap.Int("line", lineNo))
		return
	}

	path := strings.TrimRight(cutLineEnding(raw), " \t")

	if len(path) > MaxLineLength-1 {
		p.reject(stats, lineNo, path, zerr.With(ErrLineTooLong, "length", len(path)))
		return
	}

	kind, ok := Classify(path)
	if !ok {
		stats.Skipped++
		return
	}

	exists, err := p.checker.Exists(path)
	if err != nil {
		p.reject(stats, lineNo, path, err)
		return
	}
	if !exists {
		p.reject(stats, lineNo, path, ErrAssetMissing)
		return
	}

	table.Add(Entry{Path: path, Kind: kind})
	stats.Accepted++
}

func (p *Parser) reject(stats *Stats, lineNo int, path string, err error) {
	p.logger.Error("Could not access entry, ignoring",
		zap.String("path", path), zap.Int("line", lineNo), zap.Error(err))
	stats.Rejections = append(stats.Rejections, Rejection{Line: lineNo, Path: path, Reason: err.Error()})
}

func isComment(line string) bool {
	if line == "" {
		return true
	}
	switch line[0] {
	case '\r', '\n', ';', '#':
		return true
	}
	return strings.HasPrefix(line, "//")
}

func cutLineEnding(line string) string {
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		return line[:i]
	}
	return line
}
