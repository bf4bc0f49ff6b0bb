package wisp

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the tagged union Value. Go has no enum type
// with payload, so each Value carries every possible payload field and
// Kind says which one is live.
type ValueKind int

const (
	ValueNil ValueKind = iota
	ValueBoolean
	ValueNumber
	ValueString
)

var valueKindNames = map[ValueKind]string{
	ValueNil:     "nil",
	ValueBoolean: "bool",
	ValueNumber:  "number",
	ValueString:  "string",
}

func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is a runtime value of the language: Nil, Boolean, Number, or
// String. Only the field matching Kind is meaningful.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
	// Span is the source location this value was produced from, used to
	// anchor diagnostics raised about it. May be nil for values that
	// never carried one (e.g. synthesized in environment setup).
	Span *CodeSpan
}

// NilValue is the canonical Nil value with no source span.
var NilValue = Value{Kind: ValueNil}

// IsNumber reports whether v holds a Number.
func (v Value) IsNumber() bool { return v.Kind == ValueNumber }

// IsString reports whether v holds a String.
func (v Value) IsString() bool { return v.Kind == ValueString }

// IsBoolean reports whether v holds a Boolean.
func (v Value) IsBoolean() bool { return v.Kind == ValueBoolean }

// IsNil reports whether v holds Nil.
func (v Value) IsNil() bool { return v.Kind == ValueNil }

// SameKind reports whether v and other carry the same ValueKind, one
// of the two preconditions `==`/`!=` enforce (the other being that
// neither side is Nil; see Binary.Evaluate).
func (v Value) SameKind(other Value) bool { return v.Kind == other.Kind }

// Display renders v the way `print` writes it to standard output.
func (v Value) Display() string {
	switch v.Kind {
	case ValueNil:
		return "nil"
	case ValueBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ValueString:
		return v.Str
	default:
		evalLogger.Debugf("Display() called on unknown value kind %d", v.Kind)
		return ""
	}
}

// Equal implements the language's strict `==`: values of different
// kinds are never equal. Callers enforce the stricter rule that
// comparing across kinds, or comparing a Nil operand at all, is a
// BinaryOperatorTypeError before ever calling this.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueNil:
		return true
	case ValueBoolean:
		return v.Bool == other.Bool
	case ValueNumber:
		return v.Num == other.Num
	case ValueString:
		return v.Str == other.Str
	default:
		return false
	}
}
