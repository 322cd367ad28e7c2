// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFile_SingleFile(t *testing.T) {
	f := NewFile().
		WithImport("use std::fmt").
		WithComponent(NewStruct("Logger").
			WithTemplate("T").
			WithExtra("where T: Write").
			WithField(PrivateField("sink", "T"))).
		WithComponent(NewModule("tests").WithCfg("#[cfg(test)]"))

	want := "use std::fmt;\n" +
		"\n" +
		"struct Logger<T> where T: Write {\n    sink: T,\n}\n" +
		"\n" +
		"#[cfg(test)]\nmod tests {\n}\n"
	assertRender(t, want, f.Render())
	assert.Equal(t, f.Render(), f.String())
}

func TestFile_Empty(t *testing.T) {
	assert.Equal(t, "", NewFile().Render())
}

func TestFile_Docstring(t *testing.T) {
	f := NewFile().
		WithDocstring("Generated bindings.\n\nDo not edit.\n").
		WithComponent(NewText("fn main() {}"))

	want := "//! Generated bindings.\n//!\n//! Do not edit.\n\nfn main() {}\n"
	assert.Equal(t, want, f.Render())
}

func TestFile_SectionOrder(t *testing.T) {
	f := NewFile().
		WithBottom("// end").
		WithComponent(NewConst("A").WithType("u8").WithValue("1")).
		WithTop("type Byte = u8;").
		WithImports([]string{"use a", "use b"}).
		WithDocstring("doc")

	want := "//! doc\n\nuse a;\nuse b;\n\ntype Byte = u8;\n\nconst A: u8 = 1;\n\n// end\n"
	assert.Equal(t, want, f.Render())
}

func TestFile_ReplaceAndCopy(t *testing.T) {
	base := NewFile().WithComponent(NewText("// one"))
	replaced := base.WithComponents([]Component{NewText("// two")})
	extended := base.WithComponent(NewText("// three"))

	assert.Len(t, base.Components(), 1)
	assert.Len(t, replaced.Components(), 1)
	assert.Len(t, extended.Components(), 2)
	assert.Equal(t, "// one\n", base.Render())
	assert.Equal(t, "// two\n", replaced.Render())
}

func TestFile_Setters(t *testing.T) {
	f := NewFile()
	f.PushImport("use std::io")
	f.PushComponent(NewStatic("N").WithType("usize").WithValue("3"))
	f.SetDocstring("io helpers")
	f.SetTop("// top")
	f.SetBottom("// bottom")

	assert.Equal(t, "//! io helpers\n\nuse std::io;\n\n// top\n\nstatic N: usize = 3;\n\n// bottom\n", f.Render())
}

func TestFile_LineLevelRootsSeparated(t *testing.T) {
	f := NewFile().
		WithComponent(NewConst("A").WithType("u8").WithValue("1")).
		WithComponent(NewText("// note")).
		WithComponent(NewStruct("B")).
		WithBottom("// end\n\n")

	want := "const A: u8 = 1;\n\n// note\n\nstruct B {\n}\n\n// end\n"
	assert.Equal(t, want, f.Render())
}

func TestFile_EndsInSingleNewline(t *testing.T) {
	out := NewFile().WithComponent(NewStruct("A")).WithComponent(NewEnum("B")).Render()
	assert.Equal(t, "struct A {\n}\n\nenum B {\n}\n", out)
}
