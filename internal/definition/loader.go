// Package definition reads and writes hand-written DFAs for the command
// line tools. Three forms are accepted: the line-oriented text form (see
// Definition), YAML and JSON (see Document).
package definition

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

// Load reads a DFA from path. The extension picks the form: .yaml/.yml,
// .json, anything else is the text form.
func Load(path string) (*regexlib.DFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// Decode parses data in the form implied by name's extension.
func Decode(name string, data []byte) (*regexlib.DFA, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		return doc.DFA()
	case ".json":
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
		return doc.DFA()
	default:
		def, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		return def.DFA()
	}
}

// Encode writes d to w as YAML.
func Encode(w io.Writer, d *regexlib.DFA) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromDFA(d)); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}
