// Package resourcename compiles slash-delimited resource name templates such
// as "accounts/{account}/vehicles/{vehicle}" and uses them to parse and format
// resource names.
//
// Each variable is either segment scoped ({name} or {name=*}), in which case
// its value is a single path segment with '/' encoded as %2F, or path scoped
// ({name=**} or a sub-pattern containing '/'), in which case the separators of
// the value are structural and every part is encoded on its own.
package resourcename

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrNameMismatch   = errors.New("name does not match template")
)

// Class tells how a variable's value is encoded.
type Class int

const (
	// SegmentScoped values occupy exactly one path segment.
	SegmentScoped Class = iota
	// PathScoped values span one or more segments.
	PathScoped
)

func (c Class) String() string {
	if c == PathScoped {
		return "path"
	}
	return "segment"
}

type elemKind int

const (
	literal elemKind = iota
	wildcard
	multiWildcard
)

type element struct {
	kind elemKind
	text string
	vidx int // index into Template.vars, -1 when unbound
}

type variable struct {
	name  string
	class Class
	first int // first element index
	last  int // last element index
}

// Template is an immutable compiled name template. It is safe for concurrent use.
type Template struct {
	pattern string
	elems   []element
	vars    []variable
	byName  map[string]int
}

// Compile parses pattern into a Template.
func Compile(pattern string) (*Template, error) {
	t := &Template{pattern: pattern, byName: map[string]int{}}
	if err := t.parse(); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return t, nil
}

// MustCompile is like Compile but panics if pattern is malformed.
func MustCompile(pattern string) *Template {
	t, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) parse() error {
	p := t.pattern
	if p == "" {
		return errors.New("empty pattern")
	}
	for i := 0; i <= len(p); {
		if i == len(p) || p[i] == '/' {
			return errors.New("empty segment")
		}
		if p[i] == '{' {
			end := strings.IndexByte(p[i:], '}')
			if end < 0 {
				return errors.New("unclosed '{'")
			}
			if err := t.addVariable(p[i+1 : i+end]); err != nil {
				return err
			}
			i += end + 1
		} else {
			end := strings.IndexByte(p[i:], '/')
			if end < 0 {
				end = len(p) - i
			}
			if err := t.addSegment(p[i:i+end], -1); err != nil {
				return err
			}
			i += end
		}
		if i == len(p) {
			return nil
		}
		if p[i] != '/' {
			return fmt.Errorf("unexpected %q after variable", p[i])
		}
		i++
	}
	return nil
}

func (t *Template) addVariable(body string) error {
	name, sub, hasSub := strings.Cut(body, "=")
	if !validIdent(name) {
		return fmt.Errorf("invalid variable name %q", name)
	}
	if _, dup := t.byName[name]; dup {
		return fmt.Errorf("duplicate variable %q", name)
	}
	if !hasSub {
		sub = "*"
	}
	if sub == "" {
		return fmt.Errorf("variable %q: empty sub-pattern", name)
	}

	class := SegmentScoped
	if sub == "**" || strings.Contains(sub, "/") {
		class = PathScoped
	}

	vidx := len(t.vars)
	v := variable{name: name, class: class, first: len(t.elems)}
	for _, seg := range strings.Split(sub, "/") {
		if seg == "" {
			return fmt.Errorf("variable %q: empty segment in sub-pattern", name)
		}
		if err := t.addSegment(seg, vidx); err != nil {
			return err
		}
	}
	v.last = len(t.elems) - 1
	t.vars = append(t.vars, v)
	t.byName[name] = vidx
	return nil
}

func (t *Template) addSegment(seg string, vidx int) error {
	if strings.ContainsAny(seg, "{}=") {
		return fmt.Errorf("unexpected character in segment %q", seg)
	}
	e := element{kind: literal, text: seg, vidx: vidx}
	switch seg {
	case "*":
		e.kind = wildcard
	case "**":
		e.kind = multiWildcard
	}
	t.elems = append(t.elems, e)
	return nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// String returns the pattern the template was compiled from, verbatim.
func (t *Template) String() string {
	return t.pattern
}

// Vars returns the variable names in the order they appear in the pattern.
func (t *Template) Vars() []string {
	names := make([]string, len(t.vars))
	for i, v := range t.vars {
		names[i] = v.name
	}
	return names
}

// Class returns the encoding class of the named variable.
func (t *Template) Class(name string) (Class, bool) {
	i, ok := t.byName[name]
	if !ok {
		return 0, false
	}
	return t.vars[i].class, true
}

// Parse matches name against the template and returns the decoded value of
// every variable. It fails with ErrNameMismatch when name does not match.
func (t *Template) Parse(name string) (map[string]string, error) {
	raw, ok := t.matchRaw(name)
	if !ok {
		return nil, fmt.Errorf("%w: name %q, template %q", ErrNameMismatch, name, t.pattern)
	}
	out := make(map[string]string, len(raw))
	for i, v := range t.vars {
		var (
			d   string
			err error
		)
		if v.class == PathScoped {
			d, err = NormalizePath(raw[i])
		} else {
			d, err = UnescapeSegment(raw[i])
		}
		if err != nil {
			return nil, fmt.Errorf("%w: name %q, variable %q: %v", ErrNameMismatch, name, v.name, err)
		}
		out[v.name] = d
	}
	return out, nil
}

// Match is like Parse but reports failure with ok == false.
func (t *Template) Match(name string) (map[string]string, bool) {
	m, err := t.Parse(name)
	if err != nil {
		return nil, false
	}
	return m, true
}

// Matches reports whether name matches the template.
func (t *Template) Matches(name string) bool {
	_, ok := t.Match(name)
	return ok
}

// Format encodes each binding according to its variable's class and
// substitutes it into the template. Every variable must be bound and the
// result must parse back to the same bindings.
func (t *Template) Format(bindings map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(t.elems); i++ {
		if i > 0 {
			b.WriteByte('/')
		}
		e := t.elems[i]
		if e.vidx < 0 {
			if e.kind != literal {
				return "", fmt.Errorf("%w %q: unbound wildcard cannot be formatted", ErrInvalidPattern, t.pattern)
			}
			b.WriteString(e.text)
			continue
		}
		v := t.vars[e.vidx]
		value, ok := bindings[v.name]
		if !ok {
			return "", fmt.Errorf("template %q: variable %q is not bound", t.pattern, v.name)
		}
		if value == "" {
			return "", fmt.Errorf("template %q: variable %q is empty", t.pattern, v.name)
		}
		if v.class == PathScoped {
			enc, err := NormalizePath(value)
			if err != nil {
				return "", fmt.Errorf("template %q: variable %q: %w", t.pattern, v.name, err)
			}
			b.WriteString(enc)
		} else {
			b.WriteString(EscapeSegment(value))
		}
		i = v.last
	}

	s := b.String()
	if !t.Matches(s) {
		return "", fmt.Errorf("%w: formatted name %q, template %q", ErrNameMismatch, s, t.pattern)
	}
	return s, nil
}

// FormatPairs is a convenience form of Format taking alternating variable
// names and values.
func (t *Template) FormatPairs(keysAndValues ...string) (string, error) {
	if len(keysAndValues)%2 != 0 {
		return "", fmt.Errorf("template %q: odd number of arguments", t.pattern)
	}
	m := make(map[string]string, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		m[keysAndValues[i]] = keysAndValues[i+1]
	}
	return t.Format(m)
}

// matchRaw returns the still-encoded value of every variable.
func (t *Template) matchRaw(name string) ([]string, bool) {
	segs := strings.Split(name, "/")
	for _, s := range segs {
		if s == "" {
			return nil, false
		}
	}

	start := make([]int, len(t.elems))
	end := make([]int, len(t.elems))
	var match func(ei, si int) bool
	match = func(ei, si int) bool {
		if ei == len(t.elems) {
			return si == len(segs)
		}
		e := t.elems[ei]
		start[ei] = si
		switch e.kind {
		case literal:
			if si < len(segs) && segs[si] == e.text {
				end[ei] = si + 1
				return match(ei+1, si+1)
			}
		case wildcard:
			if si < len(segs) {
				end[ei] = si + 1
				return match(ei+1, si+1)
			}
		case multiWildcard:
			// Remaining elements each need at least one segment.
			for n := len(segs) - si - (len(t.elems) - ei - 1); n >= 1; n-- {
				end[ei] = si + n
				if match(ei+1, si+n) {
					return true
				}
			}
		}
		return false
	}
	if !match(0, 0) {
		return nil, false
	}

	raw := make([]string, len(t.vars))
	for i, v := range t.vars {
		raw[i] = strings.Join(segs[start[v.first]:end[v.last]], "/")
	}
	return raw, true
}
