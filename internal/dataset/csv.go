package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// schemaPrefix marks the optional schema directive on the first line of a
// data file, e.g. "#schema=1.2.0".
const schemaPrefix = "#schema="

// supportedSchema is the range of data-file schema versions this build
// understands.
var supportedSchema = mustConstraint("^1")

// ErrUnsupportedSchema is returned when a data file declares a schema
// version outside the supported range.
var ErrUnsupportedSchema = errors.New("dataset: unsupported schema version")

// Table is a parsed data file: a header row and zero or more data rows.
// Rows may be shorter than the header; the missing cells are simply absent.
type Table struct {
	Schema  string
	Headers []string
	Rows    [][]string
}

// ParseFile reads a CSV data file. The first line may carry a schema
// directive, which is validated against the supported range before any
// data is parsed.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a CSV data file from r.
func Parse(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)

	schema, err := readSchemaDirective(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // short rows mean absent cells, not errors

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("dataset: no header row")
	}

	return &Table{
		Schema:  schema,
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// readSchemaDirective consumes the first line if it is a schema directive
// and validates the declared version. Files without a directive are
// accepted as-is.
func readSchemaDirective(br *bufio.Reader) (string, error) {
	peek, err := br.Peek(len(schemaPrefix))
	if err != nil || string(peek) != schemaPrefix {
		return "", nil
	}

	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	raw := strings.TrimSpace(strings.TrimPrefix(line, schemaPrefix))

	v, err := semver.NewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("dataset: bad schema version %q: %w", raw, err)
	}
	if !supportedSchema.Check(v) {
		return "", fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedSchema, raw, supportedSchema)
	}

	return raw, nil
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}
