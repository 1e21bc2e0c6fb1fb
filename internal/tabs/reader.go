package tabs

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/bft-labs/tabsum/pkg/log"
)

// maxLineBytes bounds a single mapping line. Page titles are short, so a
// longer line means the input is not a mapping file.
const maxLineBytes = 1 << 20

// utf8BOM is written at the start of the file by some editors.
const utf8BOM = "\ufeff"

// Reader loads mapping files into tables.
type Reader struct {
	logger log.Logger
}

// NewReader creates a Reader that reports progress and skipped lines to
// logger. A nil logger discards messages.
func NewReader(logger log.Logger) *Reader {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Reader{logger: logger}
}

// ReadFile reads the mapping at path.
//
// A missing file yields ErrFileNotFound and any other failure ErrUnreadable;
// in both cases the table is nil and the failure has already been logged.
// Malformed lines are logged and skipped without failing the read.
func (r *Reader) ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Error("file not found", log.String("path", path))
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		r.logger.Error("failed to open mapping", log.String("path", path), log.Err(err))
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	return r.Read(f, path)
}

// Read parses a mapping from src. source names the input in log messages.
func (r *Reader) Read(src io.Reader, source string) (*Table, error) {
	t := &Table{source: source}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			var le *LineError
			if errors.As(err, &le) {
				le.Line = lineNo
			}
			t.skipped++
			r.logger.Warn("skipping malformed line",
				log.String("source", source),
				log.Int("line", lineNo),
				log.Err(err),
			)
			continue
		}
		t.records = append(t.records, rec)
	}
	if err := scanner.Err(); err != nil {
		r.logger.Error("failed to read mapping",
			log.String("source", source),
			log.Int("line", lineNo+1),
			log.Err(err),
		)
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, source, err)
	}

	fields := []log.Field{log.String("source", source), log.Int("records", t.Len())}
	if t.skipped > 0 {
		fields = append(fields, log.Int("skipped", t.skipped))
	}
	r.logger.Info("successfully read records", fields...)
	return t, nil
}

// ParseLine splits one mapping line into a Record. The returned error is a
// *LineError matching ErrMalformedLine.
func ParseLine(line string) (Record, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = '|'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	fields, err := cr.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return Record{}, &LineError{Err: err}
	}
	if len(fields) != NumFields {
		return Record{}, &LineError{Fields: len(fields)}
	}
	return recordFromFields(fields), nil
}
