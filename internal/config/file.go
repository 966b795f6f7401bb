package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/raphi011/cbtr/internal/rules"
)

// Format is a config file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Extensions lists the recognised config file extensions in lookup order.
var Extensions = []string{".toml", ".yaml", ".yml", ".json"}

// FormatForPath picks the format from the file extension.
// Unknown extensions are read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// StringList accepts either a single string or a list of strings.
type StringList []string

// UnmarshalTOML implements toml.Unmarshaler.
func (s *StringList) UnmarshalTOML(v any) error {
	return s.set(v)
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (s *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	return s.set(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return s.set(v)
}

func (s *StringList) set(v any) error {
	switch v := v.(type) {
	case nil:
		*s = nil
	case string:
		*s = StringList{v}
	case []string:
		*s = StringList(v)
	case []any:
		list := make(StringList, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("item %d: expected string, got %T", i, item)
			}
			list = append(list, str)
		}
		*s = list
	default:
		return fmt.Errorf("expected string or list of strings, got %T", v)
	}
	return nil
}

// rawFile is the on-disk shape shared by all formats.
type rawFile struct {
	Settings rawSettings       `toml:"settings" yaml:"settings" json:"settings"`
	Aliases  map[string]string `toml:"aliases" yaml:"aliases" json:"aliases"`
	Entries  []rawEntry        `toml:"entry" yaml:"entry" json:"entry"`
}

type rawSettings struct {
	Indent *string `toml:"indent" yaml:"indent" json:"indent"`
}

type rawEntry struct {
	Name  string                `toml:"name" yaml:"name" json:"name"`
	Bin   StringList            `toml:"bin" yaml:"bin" json:"bin"`
	File  *rawFileCondition     `toml:"file" yaml:"file" json:"file"`
	Tools map[string]StringList `toml:"tools" yaml:"tools" json:"tools"`
}

type rawFileCondition struct {
	Name            StringList `toml:"name" yaml:"name" json:"name"`
	SearchDirection string     `toml:"search-direction" yaml:"search-direction" json:"search-direction"`
}

// File is one parsed and validated config file.
type File struct {
	Path    string
	Indent  *string // nil when not set
	Aliases map[string]string
	Entries []rules.Entry
}

// Parse decodes data in the given format. path is recorded as the source of
// every entry and used in error messages.
func Parse(data []byte, format Format, path string) (*File, error) {
	var raw rawFile
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(jsonc.ToJSON(data), &raw)
	default:
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	f := &File{
		Path:    path,
		Indent:  raw.Settings.Indent,
		Aliases: raw.Aliases,
	}

	for alias, applet := range raw.Aliases {
		if err := validateAlias(alias, applet); err != nil {
			return nil, &Error{Path: path, Err: err}
		}
	}

	for i, re := range raw.Entries {
		entry, err := re.toEntry(i, path)
		if err != nil {
			return nil, &Error{Path: path, Err: err}
		}
		f.Entries = append(f.Entries, entry)
	}

	return f, nil
}

func (re rawEntry) toEntry(index int, source string) (rules.Entry, error) {
	name := re.Name
	if name == "" {
		name = fmt.Sprintf("entry[%d]", index)
	}

	e := rules.Entry{
		Name:   name,
		Source: source,
		Bin:    []string(re.Bin),
		Tools:  make(map[string][]string, len(re.Tools)),
	}

	for i, bin := range e.Bin {
		if bin == "" {
			return rules.Entry{}, fmt.Errorf("entry %q: bin[%d] is empty", name, i)
		}
	}

	if re.File != nil {
		if len(re.File.Name) == 0 {
			return rules.Entry{}, fmt.Errorf("entry %q: file.name is required", name)
		}
		direction := rules.Direction(re.File.SearchDirection)
		if direction == "" {
			direction = rules.Backwards
		}
		e.File = &rules.FileCondition{
			Names:     []string(re.File.Name),
			Direction: direction,
		}
	}

	for applet, commands := range re.Tools {
		e.Tools[applet] = []string(commands)
	}

	if err := e.Validate(); err != nil {
		return rules.Entry{}, err
	}
	return e, nil
}
