package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// RecordLoader reads the whole input array from a file or URL
type RecordLoader struct {
	client *http.Client
}

// NewRecordLoader creates a loader with a bounded HTTP client
func NewRecordLoader() *RecordLoader {
	return &RecordLoader{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads source fully and decodes it as a JSON array of records
func (l *RecordLoader) Load(source string) ([]InputRecord, error) {
	var data []byte
	var err error

	if isURL(source) {
		data, err = l.fetch(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	debugLog("read %d bytes from %s", len(data), source)

	return parseRecords(data)
}

func (l *RecordLoader) fetch(url string) ([]byte, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	return io.ReadAll(resp.Body)
}

// parseRecords decodes the input array. Keys are matched exactly; an element
// that cannot be read as a record is kept and fails on its own.
func parseRecords(data []byte) ([]InputRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing input JSON: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing input JSON: top-level value is not an array")
	}

	records := make([]InputRecord, 0, len(raw))
	for _, element := range raw {
		records = append(records, decodeRecord(element))
	}
	return records, nil
}

func decodeRecord(raw json.RawMessage) InputRecord {
	fields, err := decodeObject(raw)
	if err != nil {
		return InputRecord{invalid: err}
	}

	var record InputRecord
	if record.Title, err = decodeString(fields, "title"); err != nil {
		return InputRecord{invalid: err}
	}
	if record.Body, err = decodeString(fields, "body"); err != nil {
		return InputRecord{invalid: err}
	}
	if record.Tags, err = decodeTags(fields); err != nil {
		return InputRecord{invalid: err}
	}
	return record
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedRecord)
	}
	return fields, nil
}

// decodeString returns nil for an absent or null key
func decodeString(fields map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s is not a string", ErrMalformedRecord, key)
	}
	return &s, nil
}

func decodeTags(fields map[string]json.RawMessage) (*[]Tag, error) {
	raw, ok := fields["tags"]
	if !ok || isNull(raw) {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%w: tags is not an array", ErrMalformedRecord)
	}

	tags := make([]Tag, 0, len(elements))
	for i, element := range elements {
		tagFields, err := decodeObject(element)
		if err != nil {
			return nil, fmt.Errorf("tag %d: %w", i, err)
		}
		name, err := decodeString(tagFields, "name")
		if err != nil {
			return nil, fmt.Errorf("tag %d: %w", i, err)
		}
		var tag Tag
		if name != nil {
			tag.Name = *name
		}
		tags = append(tags, tag)
	}
	return &tags, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
