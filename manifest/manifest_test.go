package manifest

import (
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/nuthatch/types"
)

func load(t *testing.T, content string) ([]Entry, *parseutil.Emitter) {
	t.Helper()
	emitter := &parseutil.Emitter{}
	entries := Load("test.yaml", []byte(content), emitter)
	return entries, emitter
}

func TestLoadManifest(t *testing.T) {
	entries, emitter := load(t, `
types:
  - name: vec3
    struct:
      fields: [f64, f64, f64]
  - name: cstring
    bits: {size: 8}
  - name: pair
    struct:
      fields: [vec3, cstring]
  - name: anynum
    abstract: true
`)

	if emitter.HasErrors() {
		t.Fatalf("unexpected errors: %v", emitter.Errors())
	}
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}

	vec3 := entries[0]
	if vec3.Name != "vec3" {
		t.Errorf("entries[0].Name = %q", vec3.Name)
	}
	want := types.NewStruct(
		"vec3",
		types.NewFloat(types.F64),
		types.NewFloat(types.F64),
		types.NewFloat(types.F64))
	if !vec3.Type.Equals(want) {
		t.Errorf("entries[0].Type = %s, want %s", vec3.Type, want)
	}
	if vec3.Type.ByteSize() != 24 {
		t.Errorf("vec3 size = %d, want 24", vec3.Type.ByteSize())
	}

	cstring := entries[1]
	if !cstring.Type.Equals(types.NewBits("cstring", 8)) {
		t.Errorf("entries[1].Type = %s", cstring.Type)
	}

	// References to previously declared entries resolve.
	pair := entries[2]
	if pair.Type.NumFields() != 2 {
		t.Fatalf("pair.NumFields() = %d, want 2", pair.Type.NumFields())
	}
	if !pair.Type.FieldType(0).Equals(vec3.Type) {
		t.Errorf("pair.FieldType(0) = %s, want vec3", pair.Type.FieldType(0))
	}

	if !entries[3].Type.IsAbstract() {
		t.Error("anynum should be abstract")
	}
}

func TestLoadManifestOptions(t *testing.T) {
	entries, emitter := load(t, `
types:
  - name: packed
    struct:
      fields: [i8, i64]
      packed: true
  - name: buffer
    bits:
      size: 8
      mutable: true
`)

	if emitter.HasErrors() {
		t.Fatalf("unexpected errors: %v", emitter.Errors())
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	if entries[0].Type.ByteSize() != 9 {
		t.Errorf("packed size = %d, want 9", entries[0].Type.ByteSize())
	}
	if entries[1].Type.IsImmutable() {
		t.Error("mutable bits type should not be immutable")
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"unknown field type",
			`
types:
  - name: broken
    struct:
      fields: [does-not-exist]
`,
		},
		{
			"duplicate declaration",
			`
types:
  - name: thing
    bits: {size: 4}
  - name: thing
    bits: {size: 8}
`,
		},
		{
			"primitive redeclaration",
			`
types:
  - name: f64
    bits: {size: 8}
`,
		},
		{
			"missing name",
			`
types:
  - bits: {size: 4}
`,
		},
		{
			"missing kind",
			`
types:
  - name: empty-decl
`,
		},
		{
			"multiple kinds",
			`
types:
  - name: both
    bits: {size: 4}
    abstract: true
`,
		},
		{
			"non-positive bits size",
			`
types:
  - name: sizeless
    bits: {size: 0}
`,
		},
		{
			"not yaml",
			"types: [unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, emitter := load(t, tt.content)
			if !emitter.HasErrors() {
				t.Error("expected errors")
			}
		})
	}
}

func TestLoadManifestContinuesAfterError(t *testing.T) {
	entries, emitter := load(t, `
types:
  - name: broken
    struct:
      fields: [nope]
  - name: ok
    bits: {size: 8}
`)

	if !emitter.HasErrors() {
		t.Error("expected errors")
	}
	if len(entries) != 1 || entries[0].Name != "ok" {
		t.Errorf("entries = %+v, want single 'ok' entry", entries)
	}
}
