package instance

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/proofview/pkg/domain"
)

// Atom strips the numeric suffix the model finder appends to every atom ("Red0" -> "Red").
func Atom(label string) string {
	return strings.TrimRightFunc(strings.TrimSpace(label), unicode.IsDigit)
}

// uncolored is the label the model finder gives a node that has no color yet.
const uncolored = "none"

// ColorOf turns a color atom into a display color ("Red0" -> "red"). Empty and "none"
// labels carry no color and yield "".
func ColorOf(label string) domain.Color {
	c := strings.ToLower(Atom(label))
	if c == uncolored {
		return ""
	}
	return domain.Color(c)
}

// TurnOf parses a turn-owner atom ("Prover0" -> TurnProver).
func TurnOf(label string) (domain.Turn, error) {
	return domain.ParseTurn(Atom(label))
}

// FlagOf parses a covered flag given as a bool or a boolean atom ("True0", "false").
func FlagOf(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(Atom(t)) {
		case "true", "yes", "covered":
			return true, nil
		case "false", "no", "uncovered":
			return false, nil
		}
		return false, fmt.Errorf("unrecognized covered flag %q", t)
	}
	return false, fmt.Errorf("unrecognized covered flag of type %T", v)
}
