package vocabulary

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type document struct {
	Genes           []string  `yaml:"genes"`
	GeneChromosomes yaml.Node `yaml:"gene_chromosomes"`
	HPOTerms        yaml.Node `yaml:"hpo_terms"`
}

// Default carga las tablas embebidas.
func Default() (*Vocabulary, error) {
	return Load(defaultYAML)
}

// MustDefault es Default para inicialización de tests y router.
func MustDefault() *Vocabulary {
	v, err := Default()
	if err != nil {
		panic(err)
	}
	return v
}

// LoadFile lee un YAML con el mismo formato que default.yaml.
func LoadFile(path string) (*Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: read %s: %w", path, err)
	}
	return Load(b)
}

// Load decodifica el YAML. Los mapas se recorren como nodos para detectar
// claves repetidas en vez de quedarse con el último valor.
func Load(data []byte) (*Vocabulary, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("vocabulary: decode yaml: %w", err)
	}

	chrPairs, err := pairs(&doc.GeneChromosomes, "gene_chromosomes")
	if err != nil {
		return nil, err
	}
	termPairs, err := pairs(&doc.HPOTerms, "hpo_terms")
	if err != nil {
		return nil, err
	}

	t := Tables{Genes: doc.Genes}
	for _, p := range chrPairs {
		t.GeneChromosomes = append(t.GeneChromosomes, GeneChromosome{Gene: p[0], Chromosome: p[1]})
	}
	for _, p := range termPairs {
		t.HPOTerms = append(t.HPOTerms, Term{Code: p[0], Name: p[1]})
	}
	return New(t)
}

func pairs(n *yaml.Node, section string) ([][2]string, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("vocabulary: %s must be a mapping (line %d)", section, n.Line)
	}

	seen := make(map[string]int, len(n.Content)/2)
	out := make([][2]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, val := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("vocabulary: %s entries must be scalar (line %d)", section, k.Line)
		}
		if line, dup := seen[k.Value]; dup {
			return nil, fmt.Errorf("vocabulary: %s key %q at line %d already defined at line %d", section, k.Value, k.Line, line)
		}
		seen[k.Value] = k.Line
		out = append(out, [2]string{k.Value, val.Value})
	}
	return out, nil
}
