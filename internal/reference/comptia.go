package reference

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Code is one CompTIA code and its description.
type Code struct {
	Code        string `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
}

// CodeBook holds symptom codes per component group and the shared modifiers.
type CodeBook struct {
	Symptoms  map[string]map[string]string `yaml:"symptoms"`
	Modifiers map[string]string            `yaml:"modifiers"`
}

func LoadCodeBook(path string) (*CodeBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("code book load failed (%s): %w", path, err)
	}
	var book CodeBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("code book parse failed (%s): %w", path, err)
	}
	return &book, nil
}

// Components lists component groups in sorted order.
func (b *CodeBook) Components() []string {
	out := make([]string, 0, len(b.Symptoms))
	for k := range b.Symptoms {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// SymptomCodes returns the codes of one component group sorted by code.
func (b *CodeBook) SymptomCodes(component string) ([]Code, error) {
	group, ok := b.Symptoms[component]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	return sortedCodes(group), nil
}

// ModifierCodes returns every modifier sorted by code.
func (b *CodeBook) ModifierCodes() []Code {
	return sortedCodes(b.Modifiers)
}

func sortedCodes(in map[string]string) []Code {
	out := make([]Code, 0, len(in))
	for k, v := range in {
		out = append(out, Code{Code: k, Description: v})
	}
	slices.SortFunc(out, func(a, b Code) int {
		switch {
		case a.Code < b.Code:
			return -1
		case a.Code > b.Code:
			return 1
		}
		return 0
	})
	return out
}
