package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/growvec/vector"
)

var errScript = errors.New("invalid script")

// step is one parsed script operation.
type step struct {
	Line  int
	Op    string
	Pos   int    // insert, erase
	N     int    // reserve, resize
	Value string // push, insert
}

// parseScript reads one operation per line. Blank lines and lines starting
// with '#' are skipped.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		s, err := parseStep(line, strings.Fields(text))
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseStep(line int, fields []string) (step, error) {
	s := step{Line: line, Op: strings.ToLower(fields[0])}
	args := fields[1:]

	bad := func(format string, a ...any) (step, error) {
		return step{}, fmt.Errorf("%w: line %d: %s: %s", errScript, line, s.Op, fmt.Sprintf(format, a...))
	}
	count := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: line %d: %s: expected %d argument(s), got %d", errScript, line, s.Op, n, len(args))
		}
		return nil
	}
	number := func(arg string) (int, error) {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: line %d: %s: %q is not a non-negative integer", errScript, line, s.Op, arg)
		}
		return n, nil
	}

	var err error
	switch s.Op {
	case "push":
		if len(args) == 0 {
			return bad("missing value")
		}
		s.Value = strings.Join(args, " ")
	case "insert":
		if len(args) < 2 {
			return bad("expected a position and a value")
		}
		if s.Pos, err = number(args[0]); err != nil {
			return step{}, err
		}
		s.Value = strings.Join(args[1:], " ")
	case "erase":
		if err = count(1); err == nil {
			s.Pos, err = number(args[0])
		}
	case "reserve", "resize":
		if err = count(1); err == nil {
			s.N, err = number(args[0])
		}
	case "pop", "clear", "shrink":
		err = count(0)
	default:
		return bad("unknown operation")
	}
	if err != nil {
		return step{}, err
	}
	return s, nil
}

// String renders the step the way it would appear in a script.
func (s step) String() string {
	switch s.Op {
	case "push":
		return "push " + s.Value
	case "insert":
		return fmt.Sprintf("insert %d %s", s.Pos, s.Value)
	case "erase":
		return fmt.Sprintf("erase %d", s.Pos)
	case "reserve", "resize":
		return fmt.Sprintf("%s %d", s.Op, s.N)
	}
	return s.Op
}

// apply runs s against v. Positions outside the vector are reported as
// errors rather than left to panic.
func apply(v *vector.Vector[string], s step) error {
	fail := func(format string, a ...any) error {
		return fmt.Errorf("line %d: %s: %s", s.Line, s, fmt.Sprintf(format, a...))
	}

	var err error
	switch s.Op {
	case "push":
		err = v.PushBack(s.Value)
	case "insert":
		if s.Pos > v.Len() {
			return fail("position out of range [0,%d]", v.Len())
		}
		_, err = v.Insert(s.Pos, s.Value)
	case "erase":
		if s.Pos >= v.Len() {
			return fail("position out of range [0,%d)", v.Len())
		}
		_, err = v.Erase(s.Pos)
	case "pop":
		if v.Empty() {
			return fail("vector is empty")
		}
		v.PopBack()
	case "reserve":
		err = v.Reserve(s.N)
	case "resize":
		err = v.Resize(s.N)
	case "clear":
		v.Clear()
	case "shrink":
		err = v.ShrinkToFit()
	default:
		return fail("unknown operation")
	}
	if err != nil {
		return fail("%v", err)
	}
	return nil
}
