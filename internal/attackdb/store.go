package attackdb

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/attack"
)

// --- YAML persistence ---

type outputYAML struct {
	Strikes       []string `yaml:"strikes,omitempty"`
	GarbageBlocks int      `yaml:"garbage_blocks"`
	ComboType     string   `yaml:"combo_type"`
	Description   string   `yaml:"description,omitempty"`
	TotalDamage   int      `yaml:"total_damage"`
}

type tableFileYAML struct {
	Version   string                `yaml:"version"`
	Rules     map[string]outputYAML `yaml:"rules"`
	Overrides map[string]outputYAML `yaml:"overrides,omitempty"`
}

const tableFileVersion = "1"

// SaveFile writes the generated table and the operator overrides to path as
// one YAML document, synchronously rewriting the whole file.
func (d *Database) SaveFile(path string) error {
	f := tableFileYAML{
		Version:   tableFileVersion,
		Rules:     make(map[string]outputYAML, len(d.table)),
		Overrides: make(map[string]outputYAML, len(d.overrides)),
	}
	for key, out := range d.table {
		f.Rules[key] = encodeOutput(out)
	}
	for key, out := range d.overrides {
		f.Overrides[key] = encodeOutput(out)
	}

	raw, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode attack table: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create table dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write attack table %s: %w", path, err)
	}
	return nil
}

// LoadFile replaces the database contents with the table stored at path.
func (d *Database) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read attack table %s: %w", path, err)
	}
	var f tableFileYAML
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse attack table %s: %w", path, err)
	}

	table := make(map[string]attack.Output, len(f.Rules))
	for key, enc := range f.Rules {
		out, err := decodeOutput(enc)
		if err != nil {
			return fmt.Errorf("attack table %s, rule %s: %w", path, key, err)
		}
		table[key] = out
	}
	overrides := make(map[string]attack.Output, len(f.Overrides))
	for key, enc := range f.Overrides {
		out, err := decodeOutput(enc)
		if err != nil {
			return fmt.Errorf("attack table %s, override %s: %w", path, key, err)
		}
		overrides[key] = out
	}

	d.table = table
	d.overrides = overrides
	return nil
}

func encodeOutput(out attack.Output) outputYAML {
	enc := outputYAML{
		GarbageBlocks: out.GarbageBlocks,
		ComboType:     string(out.ComboType),
		Description:   out.Description,
		TotalDamage:   out.TotalDamage,
	}
	for _, s := range out.Strikes {
		enc.Strikes = append(enc.Strikes, s.String())
	}
	return enc
}

func decodeOutput(enc outputYAML) (attack.Output, error) {
	out := attack.Output{
		GarbageBlocks: enc.GarbageBlocks,
		ComboType:     attack.ComboType(enc.ComboType),
		Description:   enc.Description,
		TotalDamage:   enc.TotalDamage,
	}
	for _, desc := range enc.Strikes {
		shape, err := attack.ParseShape(desc)
		if err != nil {
			return attack.Output{}, err
		}
		out.Strikes = append(out.Strikes, shape)
	}
	return out, nil
}
