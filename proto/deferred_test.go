package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayWrapperName(t *testing.T) {
	dt := ArrayWrapper("Address")
	assert.Equal(t, "Array_Address", dt.Name)
	assert.Equal(t, DeferredArray, dt.Kind)
	assert.Equal(t, "Address", dt.ItemTypeName)
}

func TestTupleWrapperNames(t *testing.T) {
	pair := TupleWrapper([]string{"Address", "Match"})
	assert.Equal(t, "Pair_Address_Match", pair.Name)

	triple := TupleWrapper([]string{"string", "Integer", "Address"})
	assert.Equal(t, "Tuple_string_Integer_Address", triple.Name)

	single := TupleWrapper([]string{"Address"})
	assert.Equal(t, "Tuple_Address", single.Name)
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewDeferredRegistry()

	// Identical shapes derive identical names and collapse to one entry,
	// regardless of where they are first encountered.
	r.Register(TupleWrapper([]string{"Address", "Match"}))
	r.Register(ArrayWrapper("Address"))
	r.Register(TupleWrapper([]string{"Address", "Match"}))
	r.Register(ArrayWrapper("Address"))

	assert.Equal(t, 2, r.Len())
}

func TestDrainSortsByNameAndEmpties(t *testing.T) {
	r := NewDeferredRegistry()
	r.Register(TupleWrapper([]string{"Zeta", "Zeta"}))
	r.Register(ArrayWrapper("Address"))
	r.Register(ArrayWrapper("Integer"))

	drained := r.Drain()
	require.Len(t, drained, 3)
	assert.Equal(t, "Array_Address", drained[0].Name)
	assert.Equal(t, "Array_Integer", drained[1].Name)
	assert.Equal(t, "Pair_Zeta_Zeta", drained[2].Name)

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Drain())
}
