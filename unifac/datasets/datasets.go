// Package datasets ships small built-in UNIFAC parameter tables and group
// decompositions of common solvents, so that a model can be built without
// any file on disk.
//
//	table, _ := datasets.VLE()
//	reg, _ := datasets.Substances("ethanol", "water")
//	eng, _ := unifac.New(table, reg)
//
// The tables are subsets of the published parameter sets (classic VLE and
// modified Dortmund) covering alkanes, aromatics, alcohols, water and
// ketones. Each call parses a fresh, independent table.
package datasets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermact/unifac"
)

//go:embed vle.txt dor.txt substances.yaml
var files embed.FS

// Builtin dataset names accepted by Lookup.
const (
	NameVLE = "vle"
	NameDOR = "dor"
)

var (
	// ErrUnknownDataset is returned by Lookup for a name it does not know.
	ErrUnknownDataset = errors.New("datasets: unknown dataset")

	// ErrUnknownSubstance is returned by Substances for a name without a
	// builtin decomposition.
	ErrUnknownSubstance = errors.New("datasets: unknown substance")
)

var sources = map[string]string{
	NameVLE: "vle.txt",
	NameDOR: "dor.txt",
}

// VLE returns the classic UNIFAC (VLE) subset.
func VLE() (*unifac.ParameterTable, error) { return Lookup(NameVLE) }

// DOR returns the modified UNIFAC (Dortmund) subset.
func DOR() (*unifac.ParameterTable, error) { return Lookup(NameDOR) }

// Lookup parses the builtin dataset called name (case-insensitive).
func Lookup(name string) (*unifac.ParameterTable, error) {
	file, ok := sources[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownDataset)
	}
	raw, err := files.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("datasets: %w", err)
	}
	t, err := unifac.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("datasets: %s: %w", file, err)
	}

	return t, nil
}

// Names returns the builtin dataset names, sorted.
func Names() []string {
	out := make([]string, 0, len(sources))
	for k := range sources {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// builtin holds the decoded substance file; it is read once.
var builtin struct {
	once  sync.Once
	order []string
	decl  map[string]string
	err   error
}

func loadBuiltin() {
	raw, err := files.ReadFile("substances.yaml")
	if err != nil {
		builtin.err = err
		return
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		builtin.err = err
		return
	}
	m := doc.Content[0]
	builtin.decl = make(map[string]string, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		name := m.Content[i].Value
		builtin.order = append(builtin.order, name)
		builtin.decl[name] = m.Content[i+1].Value
	}
}

// SubstanceNames returns the names of all builtin decompositions in file
// order.
func SubstanceNames() []string {
	builtin.once.Do(loadBuiltin)

	return append([]string(nil), builtin.order...)
}

// Substances returns a registry holding the builtin decompositions of the
// given substances, in the given order. Without arguments every builtin
// substance is added. The decompositions use the sub-group names of the VLE
// dataset.
func Substances(names ...string) (*unifac.Registry, error) {
	builtin.once.Do(loadBuiltin)
	if builtin.err != nil {
		return nil, fmt.Errorf("datasets: substances: %w", builtin.err)
	}
	if len(names) == 0 {
		names = builtin.order
	}

	reg := unifac.NewRegistry()
	for _, name := range names {
		decl, ok := builtin.decl[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownSubstance)
		}
		if err := reg.Add(name, decl); err != nil {
			return nil, fmt.Errorf("datasets: %w", err)
		}
	}

	return reg, nil
}
