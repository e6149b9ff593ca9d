package codegen

import (
	"bytes"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"sdformat-go/internal/schema"
	"sdformat-go/schemas"
)

func mustSet(t *testing.T, files map[string]string) schema.Set {
	t.Helper()
	set := make(schema.Set, len(files))
	for name, doc := range files {
		el, err := schema.Parse(name, []byte(doc))
		if err != nil {
			t.Fatalf("schema.Parse(%s) error = %v", name, err)
		}
		set[name] = el
	}
	return set
}

// structFields parses generated source and returns, per struct type, its
// fields as "Name Type Tag" strings.
func structFields(t *testing.T, src []byte) map[string][]string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "zz_generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	out := make(map[string][]string)
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		st, ok := spec.Type.(*ast.StructType)
		if !ok {
			return true
		}
		var fields []string
		for _, f := range st.Fields.List {
			tag := ""
			if f.Tag != nil {
				tag = f.Tag.Value
			}
			for _, name := range f.Names {
				fields = append(fields, name.Name+" "+types.ExprString(f.Type)+" "+tag)
			}
		}
		out[spec.Name.Name] = fields
		return false
	})
	return out
}

func TestCompileCardinalityWrapping(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"thing.sdf": `<element name="thing" required="1">
  <element name="maybe" type="double" required="0"/>
  <element name="exactly" type="double" required="1"/>
  <element name="many" type="double" required="*"/>
  <element name="at_least_one" type="double" required="+"/>
</element>`,
	})

	res, err := Compile(set, Options{Package: "sdf", Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	got := structFields(t, res.Source)["SdfThing"]
	want := []string{
		"XMLName xml.Name `xml:\"thing\"`",
		"Maybe *float64 `xml:\"maybe,omitempty\"`",
		"Exactly float64 `xml:\"exactly\"`",
		"Many []float64 `xml:\"many\"`",
		"AtLeastOne []float64 `xml:\"at_least_one\"`",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SdfThing fields =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestCompileStorageTypes(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"scalars.sdf": `<element name="scalars">
  <attribute name="flag" type="bool" required="1"/>
  <attribute name="weird" type="unsigned int" required="0"/>
  <element name="d" type="double" required="1"/>
  <element name="v" type="vector3" required="1"/>
  <element name="c" type="color" required="1"/>
  <element name="q" type="quaternion" required="1"/>
</element>`,
	})

	res, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	def, ok := res.Type("SdfScalars")
	if !ok {
		t.Fatal("SdfScalars not generated")
	}

	want := map[string]string{
		"Flag":  "bool",
		"Weird": "*string",
		"D":     "float64",
		"V":     "Vector3d",
		"C":     "string",
		"Q":     "string",
	}
	for name, typ := range want {
		f, ok := def.Field(name)
		if !ok {
			t.Fatalf("field %s missing", name)
		}
		if f.GoType() != typ {
			t.Fatalf("%s.GoType() = %q, want %q", name, f.GoType(), typ)
		}
	}
	if f, _ := def.Field("Flag"); f.StructTag() != "`xml:\"flag,attr\"`" {
		t.Fatalf("Flag tag = %s", f.StructTag())
	}
	if f, _ := def.Field("Weird"); f.StructTag() != "`xml:\"weird,attr,omitempty\"`" {
		t.Fatalf("Weird tag = %s", f.StructTag())
	}
}

func TestCompileNestingAndOrder(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"link.sdf": `<element name="link" required="*">
  <description>A link.</description>
  <attribute name="name" type="string" required="1"/>
  <element name="inertial" required="0">
    <element name="inertia" required="0">
      <element name="ixx" type="double" required="0"/>
    </element>
  </element>
  <include filename="pose.sdf" required="0"/>
  <element name="kinematic" type="bool" required="0"/>
</element>`,
		"pose.sdf": `<element name="pose" type="pose" required="0">
  <attribute name="relative_to" type="string" required="0"/>
</element>`,
	})

	res, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	var order []string
	for _, def := range res.Types {
		order = append(order, def.Name)
	}
	wantOrder := []string{"SdfLink", "SdfLinkInertial", "SdfLinkInertialInertia", "SdfPose"}
	if !reflect.DeepEqual(order, wantOrder) {
		t.Fatalf("type order = %v, want %v", order, wantOrder)
	}

	fields := structFields(t, res.Source)
	wantLink := []string{
		"XMLName xml.Name `xml:\"link\"`",
		"Name string `xml:\"name,attr\"`",
		"Inertial *SdfLinkInertial `xml:\"inertial,omitempty\"`",
		"Kinematic *bool `xml:\"kinematic,omitempty\"`",
		"Pose *SdfPose `xml:\"pose,omitempty\"`",
	}
	if !reflect.DeepEqual(fields["SdfLink"], wantLink) {
		t.Fatalf("SdfLink fields =\n%s", strings.Join(fields["SdfLink"], "\n"))
	}
	wantPose := []string{
		"XMLName xml.Name `xml:\"pose\"`",
		"RelativeTo *string `xml:\"relative_to,attr,omitempty\"`",
		"Data string `xml:\",chardata\"`",
	}
	if !reflect.DeepEqual(fields["SdfPose"], wantPose) {
		t.Fatalf("SdfPose fields =\n%s", strings.Join(fields["SdfPose"], "\n"))
	}

	if !strings.Contains(string(res.Source), "// SdfLink is generated from link.sdf.\n//\n// A link.\n") {
		t.Fatalf("missing SdfLink doc comment:\n%s", res.Source)
	}
}

func TestCompileIncludeUsesDirectiveCardinality(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"world.sdf":  `<element name="world"><include filename="model.sdf" required="*"/><include filename="light.sdf" required="1"/></element>`,
		"model.sdf":  `<element name="model" required="0"><attribute name="name" type="string" required="1"/></element>`,
		"light.sdf":  `<element name="light" required="*"><attribute name="name" type="string" required="1"/></element>`,
		"plugin.sdf": `<element name="plugin" required="*"/>`,
	})

	res, err := Compile(set, Options{Prefix: "Sdf", Exclude: []string{"plugin.sdf"}})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	world, _ := res.Type("SdfWorld")
	if f, _ := world.Field("Model"); f.GoType() != "[]SdfModel" || f.Kind != KindInclude {
		t.Fatalf("Model field = %+v (%s)", f, f.GoType())
	}
	if f, _ := world.Field("Light"); f.GoType() != "SdfLight" {
		t.Fatalf("Light field type = %s, want SdfLight", f.GoType())
	}
	if _, ok := res.Type("SdfPlugin"); ok {
		t.Fatal("excluded plugin.sdf produced a type")
	}
}

func TestCompileExcludedIncludeResolvesToHandwrittenName(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"visual.sdf":   `<element name="visual"><include filename="geometry.sdf" required="1"/></element>`,
		"geometry.sdf": `<element name="geometry"><element name="empty"/></element>`,
	})
	res, err := Compile(set, Options{Prefix: "Sdf", Exclude: []string{"geometry.sdf"}})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	got := structFields(t, res.Source)["SdfVisual"]
	if len(got) != 2 || got[1] != "Geometry SdfGeometry `xml:\"geometry\"`" {
		t.Fatalf("SdfVisual fields = %v", got)
	}
}

func TestCompileSelfReferenceUsesIndirection(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"model.sdf": `<element name="model" required="*">
  <attribute name="name" type="string" required="1"/>
  <element ref="model" required="*"/>
  <element name="group" required="0">
    <element ref="model" required="1"/>
  </element>
</element>`,
	})

	res, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	fields := structFields(t, res.Source)
	if got := fields["SdfModel"][2]; got != "Model []*SdfModel `xml:\"model\"`" {
		t.Fatalf("SdfModel ref field = %q", got)
	}
	if got := fields["SdfModelGroup"][1]; got != "Model []*SdfModel `xml:\"model\"`" {
		t.Fatalf("SdfModelGroup ref field = %q", got)
	}
}

func TestCompileBreaksByValueIncludeCycles(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"a.sdf": `<element name="a"><include filename="b.sdf" required="1"/></element>`,
		"b.sdf": `<element name="b"><include filename="a.sdf" required="1"/></element>`,
		"c.sdf": `<element name="c"><include filename="c.sdf" required="1"/></element>`,
	})

	res, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	fields := structFields(t, res.Source)
	if got := fields["SdfA"][1]; got != "B SdfB `xml:\"b\"`" {
		t.Fatalf("SdfA.B = %q, want by value", got)
	}
	if got := fields["SdfB"][1]; got != "A *SdfA `xml:\"a,omitempty\"`" {
		t.Fatalf("SdfB.A = %q, want pointer", got)
	}
	if got := fields["SdfC"][1]; got != "C *SdfC `xml:\"c,omitempty\"`" {
		t.Fatalf("SdfC.C = %q, want pointer", got)
	}
}

func TestCompileFieldNameEscapes(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"odd.sdf": `<element name="odd" type="string">
  <attribute name="data" type="string" required="1"/>
  <attribute name="name" type="string" required="1"/>
  <element name="name" type="string" required="1"/>
  <element name="3d" type="string" required="1"/>
  <element name="gz:extra" type="string" required="1"/>
</element>`,
	})

	res, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := []string{
		"XMLName xml.Name `xml:\"odd\"`",
		"Data_ string `xml:\"data,attr\"`",
		"Name string `xml:\"name,attr\"`",
		"Name_ string `xml:\"name\"`",
		"X3D string `xml:\"3d\"`",
		"GzExtra string `xml:\"gz:extra\"`",
		"Data string `xml:\",chardata\"`",
	}
	if got := structFields(t, res.Source)["SdfOdd"]; !reflect.DeepEqual(got, want) {
		t.Fatalf("SdfOdd fields =\n%s", strings.Join(got, "\n"))
	}
}

func TestCompileTypedChildWithAttributesBecomesStruct(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"mesh.sdf": `<element name="mesh">
  <element name="uri" type="string" required="1">
    <attribute name="cache" type="bool" required="0"/>
  </element>
</element>`,
	})
	res, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	fields := structFields(t, res.Source)
	if got := fields["SdfMesh"][1]; got != "Uri SdfMeshUri `xml:\"uri\"`" {
		t.Fatalf("SdfMesh.Uri = %q", got)
	}
	if got := fields["SdfMeshUri"]; len(got) != 3 || got[2] != "Data string `xml:\",chardata\"`" {
		t.Fatalf("SdfMeshUri fields = %v", got)
	}
}

func TestCompileOpenAttrs(t *testing.T) {
	t.Parallel()

	set := mustSet(t, map[string]string{
		"root.sdf": `<element name="sdf">
  <attribute name="version" type="string" required="1"/>
  <element name="world" required="*"><attribute name="name" type="string" required="1"/></element>
</element>`,
	})
	res, err := Compile(set, Options{Prefix: "Sdf", OpenAttrs: []string{"root.sdf"}})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	fields := structFields(t, res.Source)
	want := []string{
		"XMLName xml.Name `xml:\"sdf\"`",
		"Version string `xml:\"version,attr\"`",
		"Attrs []xml.Attr `xml:\",any,attr\"`",
		"World []SdfRootWorld `xml:\"world\"`",
	}
	if !reflect.DeepEqual(fields["SdfRoot"], want) {
		t.Fatalf("SdfRoot fields = %v, want %v", fields["SdfRoot"], want)
	}
	if got := fields["SdfRootWorld"]; len(got) != 2 {
		t.Fatalf("nested types stay closed, SdfRootWorld fields = %v", got)
	}
	def, _ := res.Type("SdfRoot")
	if f, ok := def.Field("Attrs"); !ok || f.Kind != KindAnyAttr {
		t.Fatalf("Attrs field = %+v, %v", f, ok)
	}

	closed, err := Compile(set, Options{Prefix: "Sdf"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := structFields(t, closed.Source)["SdfRoot"]; len(got) != 3 {
		t.Fatalf("SdfRoot without OpenAttrs = %v", got)
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "unresolved include",
			files:   map[string]string{"a.sdf": `<element name="a"><include filename="missing.sdf" required="1"/></element>`},
			wantErr: ErrUnresolvedInclude,
		},
		{
			name:    "unresolved reference",
			files:   map[string]string{"a.sdf": `<element name="a"><element ref="nothing" required="*"/></element>`},
			wantErr: ErrUnresolvedReference,
		},
		{
			name:    "unnamed composite",
			files:   map[string]string{"a.sdf": `<element name="a"><element required="1"/></element>`},
			wantErr: ErrUnnamedElement,
		},
		{
			name: "duplicate type name",
			files: map[string]string{
				"a.sdf":   `<element name="a"><element name="b"/></element>`,
				"a_b.sdf": `<element name="ab"/>`,
			},
			wantErr: ErrDuplicateType,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Compile(mustSet(t, tc.files), Options{Prefix: "Sdf"})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Compile() error = %v, want %v", err, tc.wantErr)
			}
			if res != nil {
				t.Fatal("Compile() returned partial output on error")
			}
		})
	}
}

func TestCompileBundledSchema(t *testing.T) {
	t.Parallel()

	set, err := schemas.Load(schemas.DefaultVersion)
	if err != nil {
		t.Fatalf("schemas.Load() error = %v", err)
	}
	res, err := Compile(set, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	fields := structFields(t, res.Source)
	for _, name := range []string{"SdfRoot", "SdfWorld", "SdfModel", "SdfLink", "SdfPose", "SdfBoxShape", "SdfLinkInertialInertia"} {
		if _, ok := fields[name]; !ok {
			t.Fatalf("bundled compile missing %s", name)
		}
	}
	for _, name := range []string{"SdfPlugin", "SdfFrame", "SdfGeometry"} {
		if _, ok := fields[name]; ok {
			t.Fatalf("bundled compile generated hand-maintained %s", name)
		}
	}

	model, _ := res.Type("SdfModel")
	if f, ok := model.Field("Model"); !ok || f.GoType() != "[]*SdfModel" {
		t.Fatalf("SdfModel.Model = %+v", f)
	}
	if f, ok := model.Field("Plugin"); !ok || f.GoType() != "[]SdfPlugin" {
		t.Fatalf("SdfModel.Plugin = %+v", f)
	}
	if !strings.HasPrefix(string(res.Source), "// Code generated by sdfgen. DO NOT EDIT.\n\npackage sdf\n") {
		t.Fatalf("unexpected header:\n%.80s", res.Source)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	set, err := schemas.Load(schemas.DefaultVersion)
	if err != nil {
		t.Fatalf("schemas.Load() error = %v", err)
	}
	first, err := Compile(set, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Compile(set, DefaultOptions())
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if string(again.Source) != string(first.Source) {
			t.Fatal("Compile() output differs between runs")
		}
	}
}

func TestGeneratedSourceUpToDate(t *testing.T) {
	t.Parallel()

	set, err := schemas.Load(schemas.DefaultVersion)
	if err != nil {
		t.Fatalf("schemas.Load() error = %v", err)
	}
	res, err := Compile(set, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	checked, err := os.ReadFile(filepath.Join("..", "..", "pkg", "sdf", "zz_generated.go"))
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !bytes.Equal(res.Source, checked) {
		t.Fatal("pkg/sdf/zz_generated.go is stale, run go generate ./pkg/sdf")
	}
}
