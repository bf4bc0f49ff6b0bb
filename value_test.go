package wisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueDisplay(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", NilValue, "nil"},
		{"true", Value{Kind: ValueBoolean, Bool: true}, "true"},
		{"false", Value{Kind: ValueBoolean, Bool: false}, "false"},
		{"integer-valued number", Value{Kind: ValueNumber, Num: 42}, "42"},
		{"fractional number", Value{Kind: ValueNumber, Num: 1.5}, "1.5"},
		{"string", Value{Kind: ValueString, Str: "hello"}, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Display())
		})
	}
}

func TestValueEqualRequiresSameKind(t *testing.T) {
	num := Value{Kind: ValueNumber, Num: 1}
	str := Value{Kind: ValueString, Str: "1"}
	assert.False(t, num.SameKind(str))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, (Value{Kind: ValueNumber, Num: 3}).Equal(Value{Kind: ValueNumber, Num: 3}))
	assert.False(t, (Value{Kind: ValueNumber, Num: 3}).Equal(Value{Kind: ValueNumber, Num: 4}))
	assert.True(t, (Value{Kind: ValueString, Str: "a"}).Equal(Value{Kind: ValueString, Str: "a"}))
	assert.True(t, NilValue.Equal(NilValue))
}

func TestValuePredicates(t *testing.T) {
	n := Value{Kind: ValueNumber, Num: 1}
	assert.True(t, n.IsNumber())
	assert.False(t, n.IsString())
	assert.False(t, n.IsBoolean())
	assert.False(t, n.IsNil())
	assert.True(t, NilValue.IsNil())
}
