// Package export writes results to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sw33tLie/playscope/internal/utils"
)

// DefaultFile is used when no output path is given.
const DefaultFile = "playstore_data.json"

// Marshal encodes v as 2-space indented JSON with a trailing newline.
// Non-ASCII and HTML characters are written as-is.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveJSON writes v to path, replacing any existing file. Concurrent runs
// writing the same path take turns.
func SaveJSON(path string, v interface{}) (err error) {
	if path == "" {
		path = DefaultFile
	}
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	lock := utils.NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
