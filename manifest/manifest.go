// Type manifests declare named value types in yaml, for tooling and tests
// that exercise call classification without a host type system attached:
//
//	types:
//	  - name: vec3
//	    struct:
//	      fields: [f64, f64, f64]
//	  - name: cstring
//	    bits: {size: 8}
//
// Field references resolve against the primitive type names (f16, f32, f64,
// i8..i64, u8..u64) and previously declared entries.
package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/nuthatch/types"
)

type Entry struct {
	parseutil.StartEndPos

	Name string
	Type types.Type
}

var primitiveTypes = map[string]types.Type{
	"f16": types.NewFloat(types.F16),
	"f32": types.NewFloat(types.F32),
	"f64": types.NewFloat(types.F64),
	"i8":  types.NewInt(types.I8),
	"i16": types.NewInt(types.I16),
	"i32": types.NewInt(types.I32),
	"i64": types.NewInt(types.I64),
	"u8":  types.NewInt(types.U8),
	"u16": types.NewInt(types.U16),
	"u32": types.NewInt(types.U32),
	"u64": types.NewInt(types.U64),
}

type structDecl struct {
	Fields  []string `yaml:"fields"`
	Packed  bool     `yaml:"packed"`
	Mutable bool     `yaml:"mutable"`
}

type bitsDecl struct {
	Size    int  `yaml:"size"`
	Mutable bool `yaml:"mutable"`
}

type typeDecl struct {
	Name     string      `yaml:"name"`
	Struct   *structDecl `yaml:"struct"`
	Bits     *bitsDecl   `yaml:"bits"`
	Abstract bool        `yaml:"abstract"`
}

type fileDecl struct {
	Types []yaml.Node `yaml:"types"`
}

// Load parses a yaml type manifest.  Malformed declarations are reported
// through the emitter; well-formed entries are returned in declaration
// order regardless of errors elsewhere in the file.
func Load(
	fileName string,
	content []byte,
	emitter *parseutil.Emitter,
) []Entry {
	loader := &manifestLoader{
		fileName: fileName,
		emitter:  emitter,
		declared: map[string]types.Type{},
	}
	return loader.load(content)
}

type manifestLoader struct {
	fileName string
	emitter  *parseutil.Emitter

	declared map[string]types.Type
}

func (loader *manifestLoader) locate(node *yaml.Node) parseutil.Location {
	return parseutil.Location{
		FileName: loader.fileName,
		Line:     node.Line,
		Column:   node.Column,
	}
}

func (loader *manifestLoader) load(content []byte) []Entry {
	file := fileDecl{}
	err := yaml.Unmarshal(content, &file)
	if err != nil {
		loader.emitter.Emit(
			parseutil.Location{FileName: loader.fileName, Line: 1, Column: 1},
			"invalid manifest: %s",
			err)
		return nil
	}

	entries := []Entry{}
	for idx := range file.Types {
		node := &file.Types[idx]
		entry, ok := loader.loadEntry(node)
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	return entries
}

func (loader *manifestLoader) loadEntry(node *yaml.Node) (Entry, bool) {
	loc := loader.locate(node)

	decl := typeDecl{}
	err := node.Decode(&decl)
	if err != nil {
		loader.emitter.Emit(loc, "invalid type declaration: %s", err)
		return Entry{}, false
	}

	if decl.Name == "" {
		loader.emitter.Emit(loc, "type declaration without name")
		return Entry{}, false
	}

	_, isPrimitive := primitiveTypes[decl.Name]
	_, isDeclared := loader.declared[decl.Name]
	if isPrimitive || isDeclared {
		loader.emitter.Emit(loc, "duplicate type declaration (%s)", decl.Name)
		return Entry{}, false
	}

	declType, ok := loader.loadType(decl, loc)
	if !ok {
		return Entry{}, false
	}

	loader.declared[decl.Name] = declType
	return Entry{
		StartEndPos: parseutil.NewStartEndPos(loc, loc),
		Name:        decl.Name,
		Type:        declType,
	}, true
}

func (loader *manifestLoader) loadType(
	decl typeDecl,
	loc parseutil.Location,
) (
	types.Type,
	bool,
) {
	kinds := 0
	if decl.Struct != nil {
		kinds++
	}
	if decl.Bits != nil {
		kinds++
	}
	if decl.Abstract {
		kinds++
	}
	if kinds != 1 {
		loader.emitter.Emit(
			loc,
			"type declaration (%s) must have exactly one of struct/bits/abstract",
			decl.Name)
		return nil, false
	}

	switch {
	case decl.Struct != nil:
		fields := make([]types.Type, 0, len(decl.Struct.Fields))
		for _, fieldName := range decl.Struct.Fields {
			fieldType, ok := loader.resolve(fieldName)
			if !ok {
				loader.emitter.Emit(
					loc,
					"unknown field type (%s) in type declaration (%s)",
					fieldName,
					decl.Name)
				return nil, false
			}
			fields = append(fields, fieldType)
		}

		var structType *types.StructType
		if decl.Struct.Packed {
			structType = types.NewPackedStruct(decl.Name, fields...)
		} else {
			structType = types.NewStruct(decl.Name, fields...)
		}
		structType.Mutable = decl.Struct.Mutable
		return structType, true
	case decl.Bits != nil:
		if decl.Bits.Size < 1 {
			loader.emitter.Emit(
				loc,
				"bits type declaration (%s) must have positive size",
				decl.Name)
			return nil, false
		}

		bitsType := types.NewBits(decl.Name, decl.Bits.Size)
		bitsType.Mutable = decl.Bits.Mutable
		return bitsType, true
	default:
		return types.NewAbstract(decl.Name), true
	}
}

func (loader *manifestLoader) resolve(name string) (types.Type, bool) {
	primitive, ok := primitiveTypes[name]
	if ok {
		return primitive, true
	}

	declared, ok := loader.declared[name]
	return declared, ok
}
