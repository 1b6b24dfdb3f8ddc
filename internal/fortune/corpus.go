package fortune

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed fortunes.txt
var bundledCorpus string

// JoinMode controls how the lines of one entry are put back together.
type JoinMode string

const (
	// JoinConcat keeps every line exactly as read, terminators included.
	JoinConcat JoinMode = "concat"
	// JoinNewline strips line terminators and joins lines with "\n".
	JoinNewline JoinMode = "newline"
)

// ParseJoinMode validates a join mode name. Empty selects JoinConcat.
func ParseJoinMode(value string) (JoinMode, error) {
	switch mode := JoinMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return JoinConcat, nil
	case JoinConcat, JoinNewline:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported join mode %q", value)
	}
}

// Source is a named corpus stream.
type Source struct {
	Name   string
	Reader io.Reader
}

// Split divides sources into entry texts. All sources are read as one
// logical stream of lines, so an entry left open at the end of one source
// continues into the next until a delimiter line appears. Lines starting
// with '%' are delimiters and are dropped; whitespace-only entries are
// dropped as well.
func Split(sources []Source, join JoinMode) ([]string, error) {
	if join == "" {
		join = JoinConcat
	}
	s := splitter{join: join}
	for _, src := range sources {
		if err := s.read(src); err != nil {
			return nil, err
		}
	}
	s.flush()
	return s.entries, nil
}

type splitter struct {
	join    JoinMode
	entries []string
	current strings.Builder
	open    bool
	partial bool
}

func (s *splitter) read(src Source) error {
	reader := bufio.NewReader(src.Reader)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if line[0] == '%' {
				s.flush()
			} else {
				s.add(line)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", ErrCorpusLoad, src.Name, err)
		}
	}
}

func (s *splitter) add(line string) {
	switch s.join {
	case JoinNewline:
		if s.open {
			s.current.WriteByte('\n')
		}
		line = strings.TrimSuffix(line, "\n")
		s.current.WriteString(strings.TrimSuffix(line, "\r"))
	default:
		// A source that ended mid-line must not glue its last word to the
		// next source's first word.
		if s.open && s.partial {
			s.current.WriteByte('\n')
		}
		s.current.WriteString(line)
		s.partial = !strings.HasSuffix(line, "\n")
	}
	s.open = true
}

func (s *splitter) flush() {
	if !s.open {
		return
	}
	text := s.current.String()
	if strings.TrimSpace(text) != "" {
		s.entries = append(s.entries, text)
	}
	s.current.Reset()
	s.open = false
	s.partial = false
}

// LoadFiles reads corpus files in order and splits them into entries.
func LoadFiles(paths []string, join JoinMode) ([]string, error) {
	sources := make([]Source, 0, len(paths))
	defer func() {
		for _, src := range sources {
			if closer, ok := src.Reader.(io.Closer); ok {
				_ = closer.Close()
			}
		}
	}()
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %w", ErrCorpusLoad, path, err)
		}
		sources = append(sources, Source{Name: path, Reader: file})
	}
	return Split(sources, join)
}

// LoadBundled splits the reference corpus compiled into the binary.
func LoadBundled(join JoinMode) ([]string, error) {
	return Split([]Source{{Name: "bundled", Reader: strings.NewReader(bundledCorpus)}}, join)
}
