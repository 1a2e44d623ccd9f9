package flatfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/prodx/pkg/streamx"
)

// ErrNotRecord is returned when an input element is not a key/value map.
var ErrNotRecord = errors.New("element is not a record")

const maxLineSize = 16 << 20

// Decode reads a record set in format f. Input may be zstd-compressed.
//
// json, yaml and msgpack inputs hold either a list of maps or a single map.
// jsonl holds one map per line. toml holds an array of tables named
// "records".
func Decode(r io.Reader, f Format) ([]Record, error) {
	rc, err := streamx.MaybeDecompress(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	defer rc.Close()

	var recs []Record
	switch f {
	case JSON:
		recs, err = decodeJSON(rc)
	case JSONL:
		recs, err = decodeJSONL(rc)
	case YAML:
		recs, err = decodeYAML(rc)
	case TOML:
		recs, err = decodeTOML(rc)
	case Msgpack:
		recs, err = decodeMsgpack(rc)
	default:
		return nil, fmt.Errorf("decode: %w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return recs, nil
}

func decodeJSON(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return toRecords(v)
}

func decodeJSONL(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var recs []Record
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("line %d: trailing data", line)
		}
		recs = append(recs, Record(m))
	}
	return recs, sc.Err()
}

func decodeYAML(r io.Reader) ([]Record, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return toRecords(v)
}

func decodeTOML(r io.Reader) ([]Record, error) {
	var doc struct {
		Records []map[string]any `toml:"records"`
	}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	recs := make([]Record, len(doc.Records))
	for i, m := range doc.Records {
		recs[i] = Record(m)
	}
	return recs, nil
}

func decodeMsgpack(r io.Reader) ([]Record, error) {
	v, err := msgpack.NewDecoder(r).DecodeInterface()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return toRecords(v)
}

func toRecords(v any) ([]Record, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []any:
		recs := make([]Record, 0, len(v))
		for i, el := range v {
			m, ok := asMap(el)
			if !ok {
				return nil, fmt.Errorf("element %d: %w (%T)", i, ErrNotRecord, el)
			}
			recs = append(recs, m)
		}
		return recs, nil
	default:
		m, ok := asMap(v)
		if !ok {
			return nil, fmt.Errorf("%w (%T)", ErrNotRecord, v)
		}
		return []Record{m}, nil
	}
}

func asMap(v any) (Record, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Record(m), true
	case Record:
		return m, true
	case map[any]any:
		out := make(Record, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
