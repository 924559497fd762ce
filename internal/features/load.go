package features

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ParseSchema accepts either a JSON array of column names or plain text
// with one column per line.
func ParseSchema(data []byte) (*Schema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty feature column file")
	}

	var columns []string
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &columns); err != nil {
			return nil, fmt.Errorf("decoding feature columns: %w", err)
		}
	} else {
		scanner := bufio.NewScanner(bytes.NewReader(trimmed))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				columns = append(columns, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading feature columns: %w", err)
		}
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("no feature columns")
	}
	return NewSchema(columns), nil
}

// LoadSchema reads the feature-column file at path.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}
