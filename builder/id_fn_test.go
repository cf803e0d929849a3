package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iglsynth/iglsynth/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"Default_zero", builder.DefaultIDFn, 0, "0"},
		{"Default_multi", builder.DefaultIDFn, 123, "123"},
		{"Symbol_first", builder.SymbolIDFn, 0, "A"},
		{"Symbol_last", builder.SymbolIDFn, 25, "Z"},
		{"Symbol_wrap", builder.SymbolIDFn, 26, "AA"},
		{"Symbol_wrap2", builder.SymbolIDFn, 27, "AB"},
		{"Symbol_long", builder.SymbolIDFn, 701, "ZZ"},
		{"Symbol_three", builder.SymbolIDFn, 702, "AAA"},
		{"SymbolNumber", builder.SymbolNumberIDFn("s"), 7, "s7"},
		{"SymbolNumber_empty", builder.SymbolNumberIDFn(""), 3, "3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestSymbolIDFn_Distinct(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		id := builder.SymbolIDFn(i)
		prev, dup := seen[id]
		assert.Falsef(t, dup, "index %d repeats id %q of index %d", i, id, prev)
		seen[id] = i
	}
}
