// Package preset loads named engine configurations from YAML: the UCI
// options to set before a search and the arguments of the go command.
// Engines are order-sensitive, so decoding goes through yaml.Node and
// keeps pairs in file order.
package preset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/marcusbuffett/uciengine/pkg/uci"
)

//go:embed presets.yaml
var defaultFiles embed.FS

// Pair is one ordered key/value entry of a preset.
type Pair struct {
	Key   string
	Value string
}

// Preset names an engine configuration.
type Preset struct {
	Name    string
	Options []Pair
	Go      []Pair
}

// Job builds a GoJob carrying the preset's pairs in order. The position
// is left to the caller.
func (p Preset) Job() *uci.GoJob {
	j := uci.NewGoJob()
	for _, o := range p.Options {
		j.UciOption(o.Key, o.Value)
	}
	for _, g := range p.Go {
		j.GoOption(g.Key, g.Value)
	}
	return j
}

// Catalog holds the presets of one file, in file order.
type Catalog struct {
	byName map[string]Preset
	order  []string
}

// LoadDefault parses the embedded preset file.
func LoadDefault() (*Catalog, error) {
	raw, err := fs.ReadFile(defaultFiles, "presets.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded presets: %w", err)
	}
	return parseCatalog(raw)
}

// LoadFile parses presets from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}
	return parseCatalog(raw)
}

// Get looks a preset up by name.
func (c *Catalog) Get(name string) (Preset, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Names lists the presets in file order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

func parseCatalog(raw []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse presets yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("presets yaml: empty document")
	}

	presetsNode := mappingValue(doc.Content[0], "presets")
	if presetsNode == nil {
		return nil, fmt.Errorf("presets yaml: missing presets mapping")
	}
	if presetsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("presets yaml: presets must be a mapping")
	}

	cat := &Catalog{byName: make(map[string]Preset)}
	for i := 0; i+1 < len(presetsNode.Content); i += 2 {
		name := presetsNode.Content[i].Value
		body := presetsNode.Content[i+1]
		p := Preset{Name: name}
		if n := mappingValue(body, "options"); n != nil {
			pairs, err := mappingPairs(n)
			if err != nil {
				return nil, fmt.Errorf("preset %s options: %w", name, err)
			}
			p.Options = pairs
		}
		if n := mappingValue(body, "go"); n != nil {
			pairs, err := mappingPairs(n)
			if err != nil {
				return nil, fmt.Errorf("preset %s go: %w", name, err)
			}
			p.Go = pairs
		}
		cat.byName[name] = p
		cat.order = append(cat.order, name)
	}
	return cat, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func mappingPairs(node *yaml.Node) ([]Pair, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping")
	}
	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i+1].Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("value for %s must be a scalar", node.Content[i].Value)
		}
		pairs = append(pairs, Pair{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	return pairs, nil
}
