package monad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnify(t *testing.T) {
	for _, test := range []struct {
		name     string
		pattern  Pattern
		value    Value
		matches  bool
		bindings string
	}{
		{"literal", PLit(Int(11)), Int(11), true, "{}"},
		{"different literal", PLit(Int(11)), Int(13), false, ""},
		{"variable", PVar("x"), Int(11), true, "{x: 11}"},
		{"wildcard", PAny(), NewData("foo"), true, "{}"},
		{"tag", PTag(IntTag), Int(1), true, "{}"},
		{"different tag", PTag(IntTag), Bool(true), false, ""},
		{"tag of data", PTag(MaybeTag), Nothing(), true, "{}"},
		{
			"template with variables",
			PData("pair", PVar("a"), PVar("b")),
			NewData("pair", Int(1), Int(2)),
			true, "{a: 1, b: 2}",
		},
		{
			"nested templates",
			PData("pair", PData("just", PVar("a")), PAny()),
			NewData("pair", Just(Int(1)), Nothing()),
			true, "{a: 1}",
		},
		{"different constructor", PData("pair", PAny(), PAny()), NewData("tuple", Int(1), Int(2)), false, ""},
		{"different arity", PData("pair", PAny()), NewData("pair", Int(1), Int(2)), false, ""},
		{"scalar against template", PData("pair"), Int(1), false, ""},
		{
			"repeated variable with the same value",
			PData("pair", PVar("x"), PVar("x")),
			NewData("pair", Int(1), Int(1)),
			true, "{x: 1}",
		},
		{
			"repeated variable with different values",
			PData("pair", PVar("x"), PVar("x")),
			NewData("pair", Int(1), Int(2)),
			false, "",
		},
		{"list", PList(PVar("h"), PAny()), NewList(Int(1), Int(2)), true, "{h: 1}"},
		{"list length", PList(PVar("h")), NewList(Int(1), Int(2)), false, ""},
		{"exception", PException(PVar("e")), NewException(Int(3)), true, "{e: 3}"},
		{"value isn't an exception", PException(PVar("e")), Int(3), false, ""},
		{"data named like a list", PList(PAny()), NewData("list", Int(1)), false, ""},
		{"data named like an exception", PException(PAny()), NewData("exception", Int(1)), false, ""},
		{"template against a list", PData("list", PAny()), NewList(Int(1)), false, ""},
		{"tagged template", PTagged("just", MaybeTag, PVar("a")), Just(Int(1)), true, "{a: 1}"},
		{"tagged template with another tag", PTagged("just", MaybeTag, PVar("a")), NewData("just", Int(1)), false, ""},
	} {
		t.Run(test.name, func(t *testing.T) {
			env, ok := Unify(test.pattern, test.value)
			require.Equal(t, test.matches, ok)
			if ok {
				assert.Equal(t, test.bindings, env.String())
			}
		})
	}
}

func TestPatternString(t *testing.T) {
	p := PData("pair", PVar("x"), PData("just", PLit(Int(1))), PAny(), PTag(IntTag))
	assert.Equal(t, "pair(var<x>, just(1), _, tag<int>)", p.String())
	assert.Equal(t, "list(exception(var<e>), tag<maybe>)", PList(PException(PVar("e")), PTag(MaybeTag)).String())
}
