// Package fmtstr implements the positional templates used by long
// descriptions: `{}` is filled with an argument's plain rendering, `{:?}`
// with its debug rendering (GoString when the argument has one), and `{{`
// and `}}` stand for literal braces.
//
// A Template can be executed directly, or translated into an equivalent
// fmt format string for generated code.
package fmtstr

import (
	"fmt"
	"strings"
)

// Verb selects how a placeholder renders its argument.
type Verb int

const (
	// Display renders with %v.
	Display Verb = iota
	// Debug renders with %#v, which calls GoString on fmt.GoStringer values
	// such as generated error variants.
	Debug
)

func (v Verb) directive() string {
	if v == Debug {
		return "%#v"
	}
	return "%v"
}

type segment struct {
	literal     string
	placeholder bool
	verb        Verb
}

// Template is a parsed format string.
type Template struct {
	segments []segment
	args     int
}

// SyntaxError describes a malformed template.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses a template.
func Parse(format string) (*Template, error) {
	t := &Template{}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if strings.HasPrefix(format[i:], "{{") {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return nil, &SyntaxError{Offset: i, Msg: "unclosed {"}
			}
			var verb Verb
			switch spec := format[i+1 : i+end]; spec {
			case "":
				verb = Display
			case ":?":
				verb = Debug
			default:
				return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unsupported placeholder {%s}", spec)}
			}
			flush()
			t.segments = append(t.segments, segment{placeholder: true, verb: verb})
			t.args++
			i += end
		case '}':
			if strings.HasPrefix(format[i:], "}}") {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, &SyntaxError{Offset: i, Msg: "unmatched }"}
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return t, nil
}

// MustParse is like Parse but panics on a malformed template.
func MustParse(format string) *Template {
	t, err := Parse(format)
	if err != nil {
		panic(fmt.Sprintf("fmtstr: %q: %v", format, err))
	}
	return t
}

// NumArgs is the number of placeholders, and so of arguments, the template
// expects.
func (t *Template) NumArgs() int {
	return t.args
}

// Literal returns the unescaped text of a template without placeholders.
func (t *Template) Literal() (string, bool) {
	if t.args > 0 {
		return "", false
	}
	var sb strings.Builder
	for _, seg := range t.segments {
		sb.WriteString(seg.literal)
	}
	return sb.String(), true
}

// Printf translates the template into an equivalent fmt format string.
func (t *Template) Printf() string {
	var sb strings.Builder
	for _, seg := range t.segments {
		if seg.placeholder {
			sb.WriteString(seg.verb.directive())
			continue
		}
		sb.WriteString(strings.ReplaceAll(seg.literal, "%", "%%"))
	}
	return sb.String()
}

// Execute fills the placeholders with args, in order.
func (t *Template) Execute(args ...any) (string, error) {
	if len(args) != t.args {
		return "", fmt.Errorf("template expects %d arguments, got %d", t.args, len(args))
	}
	var sb strings.Builder
	next := 0
	for _, seg := range t.segments {
		if !seg.placeholder {
			sb.WriteString(seg.literal)
			continue
		}
		fmt.Fprintf(&sb, seg.verb.directive(), args[next])
		next++
	}
	return sb.String(), nil
}

// Substitute parses format and executes it with args.
func Substitute(format string, args ...any) (string, error) {
	t, err := Parse(format)
	if err != nil {
		return "", err
	}
	return t.Execute(args...)
}
