package properties

import (
	"fmt"
	"strings"
)

type lineKind int

const (
	kindBlank lineKind = iota
	kindComment
	kindEntry
)

type line struct {
	kind  lineKind
	raw   string
	key   string
	value string
}

// Document is an ordered, lossless view of a .properties file.
type Document struct {
	lines []line
}

// New returns an empty document.
func New() *Document {
	return &Document{lines: []line{{kind: kindBlank}}}
}

// Parse reads properties text. Lines are kept verbatim; entries are indexed
// by key. Both '=' and ':' separate keys from values.
func Parse(text string) *Document {
	raws := strings.Split(text, "\n")
	d := &Document{lines: make([]line, 0, len(raws))}
	for _, raw := range raws {
		d.lines = append(d.lines, parseLine(raw))
	}
	return d
}

func parseLine(raw string) line {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return line{kind: kindBlank, raw: raw}
	case strings.HasPrefix(trimmed, "#"), strings.HasPrefix(trimmed, "!"):
		return line{kind: kindComment, raw: raw}
	}

	sep := strings.IndexAny(trimmed, "=:")
	if sep < 0 {
		return line{kind: kindEntry, raw: raw, key: trimmed}
	}
	return line{
		kind:  kindEntry,
		raw:   raw,
		key:   strings.TrimSpace(trimmed[:sep]),
		value: strings.TrimSpace(trimmed[sep+1:]),
	}
}

// Get returns the value of key. When a key appears more than once the last
// occurrence wins, as it does for the JVM loader.
func (d *Document) Get(key string) (string, bool) {
	if i := d.lastIndex(key); i >= 0 {
		return d.lines[i].value, true
	}
	return "", false
}

// Set assigns value to key. An existing entry is rewritten in place as
// key=value; otherwise the entry is appended and the document ends with a
// newline.
func (d *Document) Set(key, value string) {
	entry := line{kind: kindEntry, raw: fmt.Sprintf("%s=%s", key, value), key: key, value: value}

	if i := d.lastIndex(key); i >= 0 {
		d.lines[i] = entry
		return
	}

	n := len(d.lines)
	if n > 0 && d.lines[n-1].kind == kindBlank && d.lines[n-1].raw == "" {
		// keep the trailing newline after the new entry
		d.lines = append(d.lines[:n-1], entry, line{kind: kindBlank})
		return
	}
	d.lines = append(d.lines, entry, line{kind: kindBlank})
}

// Keys returns entry keys in document order, including duplicates.
func (d *Document) Keys() []string {
	var keys []string
	for _, l := range d.lines {
		if l.kind == kindEntry {
			keys = append(keys, l.key)
		}
	}
	return keys
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.Keys())
}

// String serializes the document.
func (d *Document) String() string {
	raws := make([]string, len(d.lines))
	for i, l := range d.lines {
		raws[i] = l.raw
	}
	return strings.Join(raws, "\n")
}

func (d *Document) lastIndex(key string) int {
	for i := len(d.lines) - 1; i >= 0; i-- {
		if d.lines[i].kind == kindEntry && d.lines[i].key == key {
			return i
		}
	}
	return -1
}
