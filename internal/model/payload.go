package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

// -----------------------------------------------------------------------------
// Decoding defaults
// -----------------------------------------------------------------------------

// UnmarshalJSON decodes a column, defaulting an absent "nullable" to true.
func (c *Column) UnmarshalJSON(data []byte) error {
	type plain Column
	p := plain{Nullable: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Column(p)
	return nil
}

// UnmarshalYAML decodes a column, defaulting an absent "nullable" to true.
func (c *Column) UnmarshalYAML(value *yaml.Node) error {
	type plain Column
	p := plain{Nullable: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Column(p)
	return nil
}

// UnmarshalJSON accepts any scalar cell value. Numbers and booleans keep
// their literal spelling, JSON null becomes NullToken.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*r = nil
		return nil
	}

	row := make(Row, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			row[k] = NullToken
		case string:
			row[k] = val
		case json.Number:
			row[k] = val.String()
		case bool:
			row[k] = strconv.FormatBool(val)
		default:
			return errors.New("row value for " + strconv.Quote(k) + " must be a scalar")
		}
	}
	*r = row
	return nil
}

// -----------------------------------------------------------------------------
// Codecs
// -----------------------------------------------------------------------------

// DecodeJSON parses a project payload.
func DecodeJSON(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, alerr.Wrap(alerr.ErrProjectInvalid, err, "failed to decode JSON project")
	}
	return &p, nil
}

// EncodeJSON serializes a project with two-space indentation.
func EncodeJSON(p *Project) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrProjectEncode, err, "failed to encode JSON project")
	}
	return data, nil
}

// DecodeYAML parses a project written in YAML with the same keys as JSON.
func DecodeYAML(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, alerr.Wrap(alerr.ErrProjectInvalid, err, "failed to decode YAML project")
	}
	return &p, nil
}

// EncodeYAML serializes a project as YAML.
func EncodeYAML(p *Project) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, alerr.Wrap(alerr.ErrProjectEncode, err, "failed to encode YAML project")
	}
	if err := enc.Close(); err != nil {
		return nil, alerr.Wrap(alerr.ErrProjectEncode, err, "failed to encode YAML project")
	}
	return buf.Bytes(), nil
}

// -----------------------------------------------------------------------------
// Files
// -----------------------------------------------------------------------------

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, alerr.New(alerr.ErrProjectFormat, "unsupported project file extension").
			WithPath(path).
			WithHelp("use a .json, .yaml or .yml file")
	}
}

// LoadFile reads a project from a .json, .yaml or .yml file.
func LoadFile(path string) (*Project, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, alerr.Wrap(alerr.ErrProjectNotFound, err, "project file not found").WithPath(path)
		}
		return nil, alerr.Wrap(alerr.ErrProjectInvalid, err, "failed to read project file").WithPath(path)
	}

	var p *Project
	if f == formatYAML {
		p, err = DecodeYAML(data)
	} else {
		p, err = DecodeJSON(data)
	}
	if err != nil {
		var ae *alerr.Error
		if errors.As(err, &ae) {
			ae.WithPath(path)
		}
		return nil, err
	}
	return p, nil
}

// SaveFile writes a project in the format implied by the file extension,
// creating parent directories as needed.
func SaveFile(path string, p *Project) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	if f == formatYAML {
		data, err = EncodeYAML(p)
	} else {
		data, err = EncodeJSON(p)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return alerr.Wrap(alerr.ErrOutputWrite, err, "failed to create directory").WithPath(dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return alerr.Wrap(alerr.ErrOutputWrite, err, "failed to write project file").WithPath(path)
	}
	return nil
}
