package unifac

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermact/activity"
)

// Registry maps substance names to their group decomposition.
// Insertion order is preserved and becomes the component order of every
// engine built from the registry.
type Registry struct {
	names  []string
	groups map[string][]GroupCount
}

// NewRegistry returns an empty registry. The zero value is also ready to use.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string][]GroupCount)}
}

// ParseDeclaration splits a declaration such as "2*CH3 4*CH2" into group
// counts. Repeated groups are summed; the first-seen order is kept.
// A token without '*', with an empty group name, or with a count that is
// not a positive finite number yields *activity.FormatError.
func ParseDeclaration(decl string) ([]GroupCount, error) {
	tokens := strings.Fields(decl)
	if len(tokens) == 0 {
		return nil, &activity.FormatError{Text: decl, Reason: "empty declaration"}
	}

	out := make([]GroupCount, 0, len(tokens))
	at := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		countStr, group, ok := strings.Cut(tok, "*")
		if !ok {
			return nil, &activity.FormatError{Text: tok, Reason: "missing '*' between count and group"}
		}
		if group == "" {
			return nil, &activity.FormatError{Text: tok, Reason: "empty group name"}
		}
		n, err := strconv.ParseFloat(countStr, 64)
		if err != nil || n <= 0 || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, &activity.FormatError{Text: tok, Reason: "count must be a positive number"}
		}
		if k, seen := at[group]; seen {
			out[k].Count += n
			continue
		}
		at[group] = len(out)
		out = append(out, GroupCount{Group: group, Count: n})
	}

	return out, nil
}

// Add registers a substance from its declaration string.
func (r *Registry) Add(name, decl string) error {
	groups, err := ParseDeclaration(decl)
	if err != nil {
		return fmt.Errorf("substance %q: %w", name, err)
	}

	return r.AddGroups(name, groups)
}

// AddGroups registers a substance from an explicit decomposition.
func (r *Registry) AddGroups(name string, groups []GroupCount) error {
	if name == "" {
		return &activity.FormatError{Text: name, Reason: "empty substance name"}
	}
	if _, dup := r.groups[name]; dup {
		return fmt.Errorf("substance %q: %w", name, activity.ErrDuplicate)
	}
	if len(groups) == 0 {
		return &activity.FormatError{Text: name, Reason: "substance has no groups"}
	}
	if r.groups == nil {
		r.groups = make(map[string][]GroupCount)
	}
	for _, g := range groups {
		if g.Group == "" || !(g.Count > 0) || math.IsInf(g.Count, 0) {
			return &activity.FormatError{Text: name, Reason: fmt.Sprintf("bad group entry %+v", g)}
		}
	}
	r.names = append(r.names, name)
	r.groups[name] = append([]GroupCount(nil), groups...)

	return nil
}

// LoadYAML reads a YAML mapping of substance name → declaration and adds
// the entries in document order:
//
//	n-hexane: 2*CH3 4*CH2
//	butanone-2: 1*CH3 1*CH2 1*CH3CO
func (r *Registry) LoadYAML(in io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		if err == io.EOF {
			return &activity.FormatError{Reason: "empty substance document"}
		}
		return &activity.FormatError{Reason: err.Error()}
	}

	return r.addNode(&doc)
}

// AddNode adds the entries of an already decoded YAML mapping node.
// Configuration files embed substance lists this way.
func (r *Registry) AddNode(n *yaml.Node) error {
	return r.addNode(n)
}

func (r *Registry) addNode(n *yaml.Node) error {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return &activity.FormatError{Line: n.Line, Reason: "substances must be a mapping of name to declaration"}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return &activity.FormatError{Line: k.Line, Text: k.Value, Reason: "expected scalar name and declaration"}
		}
		if err := r.Add(k.Value, v.Value); err != nil {
			return fmt.Errorf("line %d: %w", k.Line, err)
		}
	}

	return nil
}

// Names returns the substance names in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Groups returns the decomposition of a substance.
func (r *Registry) Groups(name string) ([]GroupCount, bool) {
	g, ok := r.groups[name]
	if !ok {
		return nil, false
	}

	return append([]GroupCount(nil), g...), true
}

// Declaration renders the decomposition back to "count*group" form.
func (r *Registry) Declaration(name string) (string, bool) {
	g, ok := r.groups[name]
	if !ok {
		return "", false
	}
	parts := make([]string, len(g))
	for i, gc := range g {
		parts[i] = strconv.FormatFloat(gc.Count, 'g', -1, 64) + "*" + gc.Group
	}

	return strings.Join(parts, " "), true
}

// Len returns the number of registered substances.
func (r *Registry) Len() int { return len(r.names) }
