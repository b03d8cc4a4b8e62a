package item

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownType = errors.New("unknown item type")

// Type tags a resource kind. The zero value is not a valid type.
type Type int

const (
	TypeLog Type = iota + 1
	TypeRock

	typeCount = iota
)

// Types lists every item type in declaration order.
func Types() []Type {
	return []Type{TypeLog, TypeRock}
}

func (t Type) Valid() bool {
	return t >= TypeLog && t <= typeCount
}

func (t Type) String() string {
	switch t {
	case TypeLog:
		return "log"
	case TypeRock:
		return "rock"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Item is a resource value classified by its type.
type Item interface {
	Type() Type
}

type Log struct{}

func (Log) Type() Type { return TypeLog }

type Rock struct{}

func (Rock) Type() Type { return TypeRock }
