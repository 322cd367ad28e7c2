// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genericTime() Struct {
	return timeStruct().WithLifetime("a").WithLifetime("b").WithTemplate("T")
}

func TestModule_Struct(t *testing.T) {
	m := NewModule("test_module").WithComponent(genericTime())

	want := "mod test_module {\n" +
		"    struct Time<'a, 'b, T> {\n        seconds: u64,\n        minutes: u64,\n        hours: u64,\n    }\n" +
		"}\n"
	assertRender(t, want, m.Render(0))
}

func TestModule_ImportsFollowedByOneBlankLine(t *testing.T) {
	m := NewModule("test_module").
		WithImport("use crate::other_module::Struct").
		WithComponent(genericTime())

	want := "mod test_module {\n" +
		"    use crate::other_module::Struct;\n" +
		"\n" +
		"    struct Time<'a, 'b, T> {\n        seconds: u64,\n        minutes: u64,\n        hours: u64,\n    }\n" +
		"}\n"
	assertRender(t, want, m.Render(0))
}

func TestModule_ImportsOnly(t *testing.T) {
	m := NewModule("prelude").WithVisibility(Public).WithImport("pub use super::*")
	assertRender(t, "pub mod prelude {\n    pub use super::*;\n\n}\n", m.Render(0))
}

func TestModule_CfgAndNesting(t *testing.T) {
	inner := NewModule("inner").WithVisibility(CrateVisible).WithComponent(NewStatic("COUNT").WithType("u32").WithValue("0"))
	outer := NewModule("tests").
		WithCfg("#[cfg(test)]").
		WithComponent(inner).
		WithComponent(NewMethod("it_works").WithBody("assert!(true);"))

	want := "    #[cfg(test)]\n" +
		"    mod tests {\n" +
		"        pub(crate) mod inner {\n" +
		"            static COUNT: u32 = 0;\n" +
		"        }\n" +
		"\n" +
		"        fn it_works() {\n            assert!(true);\n        }\n" +
		"    }\n"
	assertRender(t, want, outer.Render(1))
}

func TestModule_WithComponentsReplaces(t *testing.T) {
	m := NewModule("m").
		WithComponent(NewText("// dropped")).
		WithComponents([]Component{NewText("// kept")})

	out := m.Render(0)
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "// kept\n")
}

func TestModule_Setters(t *testing.T) {
	m := NewModule("m")
	m.SetCfg("#[allow(dead_code)]")
	m.SetVisibility(Public)
	m.PushImport("use std::fmt")
	m.PushComponent(NewEmptyVariant("Stray"))
	m.SetComponents(append([]Component{NewText("// first")}, NewLet("x")))

	assertRender(t, "#[allow(dead_code)]\npub mod m {\n    use std::fmt;\n\n    // first\n\n    let x;\n}\n", m.Render(0))
}

func TestModule_ChildDepth(t *testing.T) {
	for _, level := range []int{0, 1, 4} {
		out := NewModule("m").WithComponent(NewStruct("S").WithField(PrivateField("f", "u8"))).Render(level)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.True(t, strings.HasPrefix(lines[0], Indent(level)+"mod"))
		assert.True(t, strings.HasPrefix(lines[1], Indent(level+1)+"struct"))
		assert.True(t, strings.HasPrefix(lines[2], Indent(level+2)+"f: u8"))
		assert.True(t, strings.HasPrefix(lines[3], Indent(level+1)+"}"))
		assert.Equal(t, Indent(level)+"}", lines[4])
	}
}
