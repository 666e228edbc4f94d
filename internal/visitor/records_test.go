package visitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecordEmitter_ExampleTree(t *testing.T) {
	emitter := NewRecordEmitter(nil, nil)
	require.NoError(t, ExampleTree().Accept(emitter))

	records := emitter.Records()
	require.Len(t, records, Count(ExampleTree()))

	type want struct {
		kind Kind
		name string
		size int64
	}
	expected := []want{
		{KindFolder, "docs", -1},
		{KindFile, "a.txt", 10},
		{KindFile, "b.txt", 20},
		{KindFolder, "logs", -1},
		{KindFile, "c.log", 15},
	}
	for i, w := range expected {
		assert.Equal(t, w.kind, records[i].Kind, "record %d", i)
		assert.Equal(t, w.name, records[i].Name, "record %d", i)
		if w.size < 0 {
			assert.Nil(t, records[i].Size, "folder %s must not carry a size", w.name)
		} else {
			require.NotNil(t, records[i].Size)
			assert.Equal(t, w.size, *records[i].Size)
		}
	}
}

func TestRecordEmitter_EmptyFolder(t *testing.T) {
	emitter := NewRecordEmitter(nil, nil)
	require.NoError(t, MustFolder("empty").Accept(emitter))
	assert.Equal(t, []Record{{Kind: KindFolder, Name: "empty"}}, emitter.Records())
}

func TestRecordEmitter_Deterministic(t *testing.T) {
	root := ExampleTree()
	var first, second bytes.Buffer
	require.NoError(t, root.Accept(NewRecordEmitter(&first, JSONEncoder{})))
	require.NoError(t, root.Accept(NewRecordEmitter(&second, JSONEncoder{})))
	assert.Equal(t, first.String(), second.String())
}

func TestJSONEncoder(t *testing.T) {
	size := int64(10)
	var buf bytes.Buffer
	require.NoError(t, JSONEncoder{}.Encode(&buf, Record{Kind: KindFile, Name: "a.txt", Size: &size}))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n  \"kind\": \"file\"")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "file", decoded["kind"])
	assert.Equal(t, "a.txt", decoded["name"])
	assert.EqualValues(t, 10, decoded["size"])

	buf.Reset()
	require.NoError(t, JSONEncoder{}.Encode(&buf, Record{Kind: KindFolder, Name: "docs"}))
	assert.NotContains(t, buf.String(), "size")
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewRecordEmitter(&buf, YAMLEncoder{})
	require.NoError(t, ExampleTree().Accept(emitter))

	dec := yaml.NewDecoder(strings.NewReader(buf.String()))
	var got []Record
	for {
		var r Record
		if err := dec.Decode(&r); err != nil {
			break
		}
		got = append(got, r)
	}
	assert.Equal(t, emitter.Records(), got)
}

func TestNewEncoder(t *testing.T) {
	tests := []struct {
		format  string
		want    RecordEncoder
		wantErr bool
	}{
		{format: "json", want: JSONEncoder{}},
		{format: "", want: JSONEncoder{}},
		{format: " YAML ", want: YAMLEncoder{}},
		{format: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			enc, err := NewEncoder(tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc)
		})
	}
}
