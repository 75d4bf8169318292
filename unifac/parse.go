package unifac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/thermact/activity"
)

// Dataset grammar tokens.
const (
	// Header is the mandatory first line of a dataset file.
	Header = "UNIFAC_parameters"

	sectionType         = "-type"
	sectionMainGroups   = "-list_of_main_groups"
	sectionSubgroups    = "-list_of_sub_groups"
	sectionInteractions = "-list_of_interaction_parameters"

	bodyIndent = "  "
)

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*ParameterTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unifac: open dataset: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("unifac: %s: %w", path, err)
	}

	return t, nil
}

// Parse reads a dataset in the line-oriented UNIFAC parameter format:
//
//	UNIFAC_parameters
//	-type
//	  classic
//
//	-list_of_main_groups
//	  1 CH2
//	  ...
//
//	-list_of_sub_groups
//	  1 CH3 1 CH2 0.9011 0.848
//	  ...
//
//	-list_of_interaction_parameters
//	  1 5 986.5 0 0 156.4 0 0
//	  ...
//
// Section bodies are indented by two spaces and end at a blank line (or EOF).
// -type is optional (classic when absent); the other three sections are
// required. The interaction body may be empty when all sub-groups share one
// main group. Main-group ids referenced by sub-groups and interactions must
// be listed. Every violation is reported as *activity.FormatError.
func Parse(r io.Reader) (*ParameterTable, error) {
	p := &parser{
		sc:     bufio.NewScanner(r),
		starts: make(map[string]int, 4),
		mains:  make(map[int]bool),
	}
	t := &ParameterTable{
		byName: make(map[string]int),
		inter:  make(map[[2]int]Coefficients),
	}

	// Stage 1: header.
	line, ok := p.next()
	if !ok {
		if err := p.sc.Err(); err != nil {
			return nil, fmt.Errorf("unifac: read dataset: %w", err)
		}
		return nil, &activity.FormatError{Line: 1, Reason: "empty dataset"}
	}
	if strings.TrimSpace(line) != Header {
		return nil, p.errorf(line, "first line must be %q", Header)
	}

	// Stage 2: sections.
	seen := make(map[string]bool, 4)
	for {
		line, ok = p.next()
		if !ok {
			break
		}
		head := strings.TrimRight(line, " \t")
		if head == "" {
			continue
		}

		if seen[head] {
			return nil, p.errorf(line, "section %s repeated", head)
		}
		p.starts[head] = p.line

		var err error
		switch head {
		case sectionType:
			err = p.readType(t)
		case sectionMainGroups:
			err = p.readMainGroups(t)
		case sectionSubgroups:
			err = p.readSubgroups(t)
		case sectionInteractions:
			err = p.readInteractions(t)
		default:
			return nil, p.errorf(line, "unexpected line outside a section")
		}
		if err != nil {
			return nil, err
		}
		seen[head] = true
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("unifac: read dataset: %w", err)
	}

	// Stage 3: required sections must be present; only the interaction
	// body may be empty.
	for _, s := range []struct {
		name  string
		empty bool
	}{
		{sectionMainGroups, len(t.mainGroups) == 0},
		{sectionSubgroups, len(t.subgroups) == 0},
		{sectionInteractions, false},
	} {
		if !seen[s.name] {
			return nil, &activity.FormatError{Text: s.name, Reason: "required section missing"}
		}
		if s.empty {
			return nil, &activity.FormatError{Line: p.starts[s.name], Text: s.name, Reason: "section is empty"}
		}
	}

	// Stage 4: main-group references.
	for _, ref := range p.refs {
		if !p.mains[ref.id] {
			return nil, &activity.FormatError{Line: ref.line, Text: ref.text, Reason: fmt.Sprintf("main group %d not listed", ref.id)}
		}
	}

	return t, nil
}

type parser struct {
	sc   *bufio.Scanner
	line int

	starts map[string]int // section name → header line
	mains  map[int]bool   // listed main-group ids
	refs   []mainRef
}

// mainRef is a main-group id used by a sub-group or interaction line.
type mainRef struct {
	line int
	text string
	id   int
}

func (p *parser) ref(line string, ids ...int) {
	for _, id := range ids {
		p.refs = append(p.refs, mainRef{line: p.line, text: line, id: id})
	}
}

func (p *parser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.line++

	return strings.TrimRight(p.sc.Text(), "\r"), true
}

func (p *parser) errorf(text, format string, args ...any) error {
	return &activity.FormatError{Line: p.line, Text: text, Reason: fmt.Sprintf(format, args...)}
}

// body calls fn with the fields of every indented line up to the next blank
// line or EOF.
func (p *parser) body(fn func(line string, fields []string) error) error {
	for {
		line, ok := p.next()
		if !ok || strings.TrimSpace(line) == "" {
			return nil
		}
		if !strings.HasPrefix(line, bodyIndent) {
			return p.errorf(line, "section body must be indented by two spaces")
		}
		if err := fn(line, strings.Fields(line)); err != nil {
			return err
		}
	}
}

func (p *parser) readType(t *ParameterTable) error {
	n := 0
	err := p.body(func(line string, fields []string) error {
		n++
		if n > 1 || len(fields) != 1 {
			return p.errorf(line, "-type takes a single word")
		}
		// Any word but "modified" means classic.
		t.kind = KindClassic
		if fields[0] == KindModified.String() {
			t.kind = KindModified
		}
		return nil
	})
	if err == nil && n == 0 {
		return p.errorf(sectionType, "-type body is empty")
	}

	return err
}

func (p *parser) readMainGroups(t *ParameterTable) error {
	return p.body(func(line string, f []string) error {
		if len(f) < 2 {
			return p.errorf(line, "main group needs id and name")
		}
		id, err := strconv.Atoi(f[0])
		if err != nil {
			return p.errorf(line, "main group id: %v", err)
		}
		if p.mains[id] {
			return p.errorf(line, "main group %d listed twice", id)
		}
		p.mains[id] = true
		t.mainGroups = append(t.mainGroups, MainGroup{ID: id, Name: f[1]})
		return nil
	})
}

func (p *parser) readSubgroups(t *ParameterTable) error {
	return p.body(func(line string, f []string) error {
		if len(f) < 6 {
			return p.errorf(line, "sub-group needs 6 fields, got %d", len(f))
		}
		main, err := strconv.Atoi(f[2])
		if err != nil {
			return p.errorf(line, "main group index: %v", err)
		}
		rq, err := p.floats(line, f[4:6])
		if err != nil {
			return err
		}
		if err = t.addSubgroup(Subgroup{Name: f[1], Main: main, R: rq[0], Q: rq[1]}); err != nil {
			return p.errorf(line, "%v", err)
		}
		p.ref(line, main)
		return nil
	})
}

func (p *parser) readInteractions(t *ParameterTable) error {
	return p.body(func(line string, f []string) error {
		if len(f) < 8 {
			return p.errorf(line, "interaction needs 8 fields, got %d", len(f))
		}
		i, err := strconv.Atoi(f[0])
		if err != nil {
			return p.errorf(line, "main group i: %v", err)
		}
		j, err := strconv.Atoi(f[1])
		if err != nil {
			return p.errorf(line, "main group j: %v", err)
		}
		v, err := p.floats(line, f[2:8])
		if err != nil {
			return err
		}
		p.ref(line, i, j)
		t.addInteraction(Interaction{
			I:  i,
			J:  j,
			IJ: Coefficients{v[0], v[1], v[2]},
			JI: Coefficients{v[3], v[4], v[5]},
		})
		return nil
	})
}

func (p *parser) floats(line string, fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for k, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, p.errorf(line, "field %q: %v", s, err)
		}
		out[k] = v
	}

	return out, nil
}
