package visitor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Kind names the element kind of a Record.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Record is the structured form of one element. Size is set for files only.
type Record struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
	Size *int64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// Record formats accepted by NewEncoder.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by NewEncoder for unsupported formats.
var ErrUnknownFormat = errors.New("unknown record format")

// RecordEncoder writes a single record to w.
type RecordEncoder interface {
	Encode(w io.Writer, r Record) error
}

// NewEncoder returns the encoder for format ("json" or "yaml").
func NewEncoder(format string) (RecordEncoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		return JSONEncoder{}, nil
	case FormatYAML:
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFormat, format, FormatJSON, FormatYAML)
	}
}

// JSONEncoder writes each record as an indented JSON object.
type JSONEncoder struct{}

// Encode implements RecordEncoder.
func (JSONEncoder) Encode(w io.Writer, r Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record %q: %w", r.Name, err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// YAMLEncoder writes each record as its own YAML document.
type YAMLEncoder struct{}

// Encode implements RecordEncoder.
func (YAMLEncoder) Encode(w io.Writer, r Record) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", r.Name, err)
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// RecordEmitter produces one Record per visited element in traversal order.
// When constructed with a writer, every record is also encoded to it.
type RecordEmitter struct {
	w       io.Writer
	enc     RecordEncoder
	records []Record
}

// NewRecordEmitter creates an emitter. A nil w only collects records;
// a nil enc defaults to JSONEncoder.
func NewRecordEmitter(w io.Writer, enc RecordEncoder) *RecordEmitter {
	if enc == nil {
		enc = JSONEncoder{}
	}
	return &RecordEmitter{w: w, enc: enc}
}

// VisitFile emits a file record including its size.
func (e *RecordEmitter) VisitFile(f *File) error {
	size := f.size
	return e.emit(Record{Kind: KindFile, Name: f.name, Size: &size})
}

// VisitFolder emits the folder record, then recurses.
func (e *RecordEmitter) VisitFolder(f *Folder) error {
	if err := e.emit(Record{Kind: KindFolder, Name: f.name}); err != nil {
		return err
	}
	return f.AcceptChildren(e)
}

// Records returns the records emitted so far.
func (e *RecordEmitter) Records() []Record {
	out := make([]Record, len(e.records))
	copy(out, e.records)
	return out
}

func (e *RecordEmitter) emit(r Record) error {
	e.records = append(e.records, r)
	if e.w == nil {
		return nil
	}
	return e.enc.Encode(e.w, r)
}
