package bodies

import (
	"encoding/json"
	"fmt"
	"os"
)

// tableFile is the on-disk layout of a body table.
type tableFile struct {
	Bodies Table `json:"bodies"`
}

// LoadTable reads and validates a JSON body table.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read body table: %w", err)
	}
	return ParseTable(data)
}

func ParseTable(data []byte) (Table, error) {
	var tf tableFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse body table: %w", err)
	}
	if len(tf.Bodies) == 0 {
		return nil, fmt.Errorf("body table is empty")
	}
	if err := tf.Bodies.Validate(); err != nil {
		return nil, err
	}
	return tf.Bodies, nil
}

// SaveTable writes t in the format LoadTable reads.
func SaveTable(path string, t Table) error {
	data, err := json.MarshalIndent(tableFile{Bodies: t}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal body table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write body table: %w", err)
	}
	return nil
}
