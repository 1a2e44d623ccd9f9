package flatfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an on-disk encoding of a record set.
type Format string

const (
	JSON    Format = "json"
	JSONL   Format = "jsonl"
	YAML    Format = "yaml"
	TOML    Format = "toml"
	Msgpack Format = "msgpack"
)

var ErrUnknownFormat = errors.New("unknown format")

var formatAliases = map[string]Format{
	"json":    JSON,
	"jsonl":   JSONL,
	"ndjson":  JSONL,
	"yaml":    YAML,
	"yml":     YAML,
	"toml":    TOML,
	"msgpack": Msgpack,
	"mpk":     Msgpack,
	"mp":      Msgpack,
}

// ParseFormat maps a format name or alias, case-insensitively.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("parse format %q: %w", name, ErrUnknownFormat)
}

// DetectFormat infers a format from a file extension. A trailing .zst or
// .zstd is ignored since compression is detected from the content.
func DetectFormat(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, ext := range []string{".zst", ".zstd"} {
		base = strings.TrimSuffix(base, ext)
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return "", fmt.Errorf("detect format of %q: %w", path, ErrUnknownFormat)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("detect format of %q: %w", path, ErrUnknownFormat)
	}
	return f, nil
}
