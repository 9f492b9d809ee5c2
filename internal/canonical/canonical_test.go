package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"zero", Int(0), "0"},
		{"empty array", Array{}, "[]"},
		{"empty object", Object{}, "{}"},
		{"array of ints", Array{Int(1), Int(2), Int(3)}, "[1,2,3]"},
		{"nested array", Array{Array{Int(0), Int(1)}, Array{Int(2), Int(3)}}, "[[0,1],[2,3]]"},
		{"simple object", Object{"a": Int(1)}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalSortedKeys(t *testing.T) {
	obj := Object{
		"value": Int(3),
		"col":   Int(1),
		"kind":  String("axiom"),
		"row":   Int(0),
	}

	result, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"col":1,"kind":"axiom","row":0,"value":3}`, string(result))
}

func TestMarshalNoHTMLEscaping(t *testing.T) {
	result, err := Marshal(String("a<b>&c"))
	require.NoError(t, err)
	assert.Equal(t, `"a<b>&c"`, string(result))
}

func TestMarshalNFCNormalization(t *testing.T) {
	// "é" as combining sequence (e + U+0301) vs precomposed (U+00E9).
	decomposed := String("é")
	precomposed := String("é")

	d, err := Marshal(decomposed)
	require.NoError(t, err)
	p, err := Marshal(precomposed)
	require.NoError(t, err)
	assert.Equal(t, string(p), string(d), "NFC normalization unifies equivalent strings")
}

func TestMarshalDeterministic(t *testing.T) {
	obj := Object{
		"cells": Array{Array{Int(0), Int(2)}, Array{Int(1), Int(3)}},
		"kind":  String("range"),
		"house": String("box/1"),
		"value": Int(4),
	}

	first, err := Marshal(obj)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(obj)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
