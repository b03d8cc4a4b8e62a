package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesCoverEveryConstant(t *testing.T) {
	types := Types()
	require.Len(t, types, typeCount)
	seen := map[Type]bool{}
	for _, typ := range types {
		assert.True(t, typ.Valid(), "%s", typ)
		assert.False(t, seen[typ], "duplicate %s", typ)
		seen[typ] = true
	}
	assert.False(t, Type(0).Valid())
	assert.False(t, Type(typeCount+1).Valid())
}

func TestFromTypeMatchesRequestedType(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			var got Item
			require.NotPanics(t, func() { got = FromType(typ) })
			assert.Equal(t, typ, got.Type())
		})
	}
}

func TestFromTypeLogMatchesLog(t *testing.T) {
	assert.Equal(t, Log{}.Type(), FromType(TypeLog).Type())
	assert.Equal(t, Log{}, FromType(TypeLog))
	assert.Equal(t, Rock{}, FromType(TypeRock))
}

func TestFromTypeReturnsFreshValues(t *testing.T) {
	a, b := FromType(TypeRock), FromType(TypeRock)
	assert.Equal(t, a, b)
}

func TestFromTypePanicsOutsideEnum(t *testing.T) {
	assert.Panics(t, func() { FromType(Type(0)) })
	assert.Panics(t, func() { FromType(Type(typeCount + 1)) })
}

func TestCreate(t *testing.T) {
	it, err := Create(TypeLog)
	require.NoError(t, err)
	assert.Equal(t, TypeLog, it.Type())

	_, err = Create(Type(99))
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(" " + typ.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	got, err := ParseType("LOG")
	require.NoError(t, err)
	assert.Equal(t, TypeLog, got)

	_, err = ParseType("plank")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypeJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Type{"t": TypeRock})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"rock"}`, string(b))

	var out struct {
		T Type `json:"t"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"t":"log"}`), &out))
	assert.Equal(t, TypeLog, out.T)

	assert.Error(t, json.Unmarshal([]byte(`{"t":"gold"}`), &out))
}
