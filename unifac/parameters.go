package unifac

import (
	"fmt"

	"github.com/katalvlaran/thermact/activity"
)

// ParameterTable is an immutable group-contribution dataset: the sub-group
// taxonomy with R/Q parameters and the main-group interaction coefficients.
//
// Sub-group indices returned by SubgroupIndex are stable positions in the
// order the sub-groups were declared. Interaction keys are main-group ids.
type ParameterTable struct {
	kind       Kind
	mainGroups []MainGroup
	subgroups  []Subgroup
	byName     map[string]int
	inter      map[[2]int]Coefficients
}

// NewTable builds a table from in-memory lists, applying the same checks
// as Parse: main-group ids and sub-group names must be unique, and every
// sub-group and interaction must refer to a listed main group.
// Each Interaction stores both directions (I→J and J→I).
func NewTable(kind Kind, mainGroups []MainGroup, subgroups []Subgroup, interactions []Interaction) (*ParameterTable, error) {
	t := &ParameterTable{
		kind:       kind,
		mainGroups: append([]MainGroup(nil), mainGroups...),
		subgroups:  make([]Subgroup, 0, len(subgroups)),
		byName:     make(map[string]int, len(subgroups)),
		inter:      make(map[[2]int]Coefficients, 2*len(interactions)),
	}
	for _, sg := range subgroups {
		if err := t.addSubgroup(sg); err != nil {
			return nil, err
		}
	}
	for _, in := range interactions {
		t.addInteraction(in)
	}
	if err := t.checkMainRefs(); err != nil {
		return nil, err
	}

	return t, nil
}

// checkMainRefs reports the first sub-group or interaction naming a main
// group that is not listed.
func (t *ParameterTable) checkMainRefs() error {
	ids := make(map[int]bool, len(t.mainGroups))
	for _, mg := range t.mainGroups {
		if ids[mg.ID] {
			return fmt.Errorf("main group %d: %w", mg.ID, activity.ErrDuplicate)
		}
		ids[mg.ID] = true
	}
	for _, sg := range t.subgroups {
		if !ids[sg.Main] {
			return &activity.FormatError{Text: sg.Name, Reason: fmt.Sprintf("main group %d not listed", sg.Main)}
		}
	}
	for k := range t.inter {
		for _, id := range k {
			if !ids[id] {
				return &activity.FormatError{Text: fmt.Sprintf("%d %d", k[0], k[1]), Reason: fmt.Sprintf("main group %d not listed", id)}
			}
		}
	}

	return nil
}

func (t *ParameterTable) addSubgroup(sg Subgroup) error {
	if sg.Name == "" {
		return &activity.FormatError{Text: sg.Name, Reason: "empty sub-group name"}
	}
	if _, dup := t.byName[sg.Name]; dup {
		return fmt.Errorf("sub-group %q: %w", sg.Name, activity.ErrDuplicate)
	}
	t.byName[sg.Name] = len(t.subgroups)
	t.subgroups = append(t.subgroups, sg)

	return nil
}

func (t *ParameterTable) addInteraction(in Interaction) {
	t.inter[[2]int{in.I, in.J}] = in.IJ
	t.inter[[2]int{in.J, in.I}] = in.JI
}

// Kind reports which combinatorial formula the table was fitted with.
func (t *ParameterTable) Kind() Kind { return t.kind }

// Combinatorial returns the combinatorial term matching Kind.
func (t *ParameterTable) Combinatorial() Combinatorial {
	if t.kind == KindModified {
		return Modified
	}

	return Classic
}

// MainGroups returns a copy of the main-group list.
func (t *ParameterTable) MainGroups() []MainGroup {
	return append([]MainGroup(nil), t.mainGroups...)
}

// Subgroups returns a copy of the sub-group list in declaration order.
func (t *ParameterTable) Subgroups() []Subgroup {
	return append([]Subgroup(nil), t.subgroups...)
}

// SubgroupIndex returns the position of the named sub-group and whether it exists.
func (t *ParameterTable) SubgroupIndex(name string) (int, bool) {
	i, ok := t.byName[name]

	return i, ok
}

// Subgroup returns the named sub-group or a *activity.GroupError.
func (t *ParameterTable) Subgroup(name string) (Subgroup, error) {
	i, ok := t.byName[name]
	if !ok {
		return Subgroup{}, &activity.GroupError{Group: name}
	}

	return t.subgroups[i], nil
}

// Interaction returns the coefficients for main group i acting on j.
// Pairs within one main group are zero when the table omits them.
func (t *ParameterTable) Interaction(i, j int) (Coefficients, bool) {
	c, ok := t.inter[[2]int{i, j}]
	if !ok && i == j {
		return Coefficients{}, true
	}

	return c, ok
}

// Len returns the number of sub-groups.
func (t *ParameterTable) Len() int { return len(t.subgroups) }
