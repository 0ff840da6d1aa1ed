package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNotObject is returned when import data is valid JSON but not an object.
var ErrNotObject = errors.New("import data is not a JSON object")

// ProfileSchema is the wire shape of a single profile, shared by export
// files and the persisted envelope.
type ProfileSchema struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Roles       []RoleSchema `json:"roles"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// RoleSchema is the wire shape of one role. Weight is decoded as a float so
// hand-edited files with fractional weights still load.
type RoleSchema struct {
	ID          string  `json:"id"`
	Category    string  `json:"category,omitempty"`
	Name        string  `json:"name"`
	Essence     string  `json:"essence"`
	Method      string  `json:"method"`
	CompanyType string  `json:"companyType"`
	Weight      float64 `json:"weight"`
	Color       string  `json:"color"`
}

// EnvelopeSchema is the persisted document holding every profile.
type EnvelopeSchema struct {
	Profiles        []ProfileSchema `json:"profiles"`
	ActiveProfileID *string         `json:"activeProfileId"`
}

// ParseProfileSchema decodes raw import data. It fails when the data is not
// JSON or not a JSON object; role contents are not checked here.
func ParseProfileSchema(data []byte) (*ProfileSchema, error) {
	if err := requireObject(data); err != nil {
		return nil, err
	}
	var schema ProfileSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing profile JSON: %w", err)
	}
	return &schema, nil
}

// ParseEnvelopeSchema decodes a persisted envelope.
func ParseEnvelopeSchema(data []byte) (*EnvelopeSchema, error) {
	if err := requireObject(data); err != nil {
		return nil, err
	}
	var schema EnvelopeSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing envelope JSON: %w", err)
	}
	return &schema, nil
}

func requireObject(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		var probe any
		err := json.Unmarshal(trimmed, &probe)
		return fmt.Errorf("parsing JSON: %w", err)
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}
	return nil
}

// ReadFile reads import data from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return data, nil
}

// ExportFileName returns the default file name for an export taken at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("role-profile-%d.json", now.UnixMilli())
}
