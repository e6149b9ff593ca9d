// Package codegen compiles a set of SDFormat schema files into Go struct
// definitions with encoding/xml tags.
//
// Compilation happens in two steps: Compile builds TypeDef descriptors from
// the immutable schema set, then renders them to gofmt'ed source. Nothing is
// written anywhere; callers decide where the source goes.
package codegen

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"go.uber.org/zap"
	"sdformat-go/internal/schema"
)

// Options configures a compilation.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Prefix is prepended to every generated type name.
	Prefix string
	// Exclude lists schema files that get no generated type because a
	// hand-maintained type with the same name exists. Includes of these files
	// still resolve to that name.
	Exclude []string
	// OpenAttrs lists schema files whose top-level type keeps undeclared
	// attributes in an Attrs field, so namespace declarations survive a
	// round trip.
	OpenAttrs []string
	Logger    *zap.Logger
}

// DefaultOptions match the hand-maintained types in pkg/sdf.
func DefaultOptions() Options {
	return Options{
		Package:   "sdf",
		Prefix:    "Sdf",
		Exclude:   []string{"plugin.sdf", "frame.sdf", "geometry.sdf"},
		OpenAttrs: []string{"root.sdf"},
	}
}

// Result is a successful compilation.
type Result struct {
	Types  []TypeDef
	Source []byte
}

// Type returns the generated type called name.
func (r *Result) Type(name string) (TypeDef, bool) {
	for _, t := range r.Types {
		if t.Name == name {
			return t, true
		}
	}
	return TypeDef{}, false
}

// scope is an enclosing element while walking a schema file.
type scope struct {
	tag      string
	typeName string
}

type compiler struct {
	set     schema.Set
	opts    Options
	exclude map[string]bool
	open    map[string]bool
	log     *zap.Logger

	types  []TypeDef
	byName map[string]int
}

// Compile turns set into type descriptors and Go source. Any schema error
// aborts the whole compilation.
func Compile(set schema.Set, opts Options) (*Result, error) {
	if opts.Package == "" {
		opts.Package = DefaultOptions().Package
	}
	c := &compiler{
		set:     set,
		opts:    opts,
		exclude: make(map[string]bool, len(opts.Exclude)),
		open:    make(map[string]bool, len(opts.OpenAttrs)),
		log:     opts.Logger,
		byName:  make(map[string]int),
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	for _, file := range opts.Exclude {
		c.exclude[file] = true
	}
	for _, file := range opts.OpenAttrs {
		c.open[file] = true
	}

	for _, file := range set.Files() {
		if c.exclude[file] {
			c.log.Debug("skipping hand-maintained schema", zap.String("file", file))
			continue
		}
		name := topLevelName(opts.Prefix, file)
		if err := c.emit(set[file], name, nil); err != nil {
			return nil, fmt.Errorf("compile %s: %w", file, err)
		}
	}

	c.breakCycles()

	src, err := render(opts.Package, c.types)
	if err != nil {
		return nil, err
	}

	c.log.Info("compiled schema set",
		zap.Int("files", len(set)),
		zap.Int("excluded", len(opts.Exclude)),
		zap.Int("types", len(c.types)))

	return &Result{Types: c.types, Source: src}, nil
}

// emit appends the TypeDef of el and then, depth-first, those of its nested
// composite children.
func (c *compiler) emit(el *schema.Element, typeName string, outer []scope) error {
	if el.Name == "" {
		return fmt.Errorf("%w: %s", ErrUnnamedElement, typeName)
	}
	if _, dup := c.byName[typeName]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateType, typeName)
	}
	idx := len(c.types)
	c.byName[typeName] = idx
	c.types = append(c.types, TypeDef{})

	def := TypeDef{
		Name:        typeName,
		Tag:         el.Name,
		SourceFile:  el.SourceFile,
		Description: el.Description,
	}
	scopes := append(outer[:len(outer):len(outer)], scope{tag: el.Name, typeName: typeName})
	names := newFieldNames(el.Type != "")

	for _, a := range el.Attributes {
		def.Fields = append(def.Fields, Field{
			Name:     names.next(a.Name),
			Tag:      a.Name,
			Kind:     KindAttribute,
			BaseType: storageType(a.Type),
			Required: a.Required,
			Default:  a.Default,
		})
	}
	if len(outer) == 0 && c.open[el.SourceFile] {
		def.Fields = append(def.Fields, Field{
			Name:     names.next(anyAttrField),
			Kind:     KindAnyAttr,
			Required: schema.Many,
		})
	}

	for _, child := range el.Children {
		switch {
		case child.IsRef():
			target, err := c.resolveRef(child.Ref, scopes)
			if err != nil {
				return err
			}
			def.Fields = append(def.Fields, Field{
				Name:     names.next(child.Ref),
				Tag:      child.Ref,
				Kind:     KindRef,
				BaseType: target,
				Required: schema.Many,
				Indirect: true,
			})
		case child.Name == "":
			return fmt.Errorf("%w: child of <%s>", ErrUnnamedElement, el.Name)
		case child.Type == "" || len(child.Children) > 0 || len(child.Attributes) > 0:
			nested := typeName + pascal(child.Name)
			def.Fields = append(def.Fields, Field{
				Name:     names.next(child.Name),
				Tag:      child.Name,
				Kind:     KindStruct,
				BaseType: nested,
				Required: child.Required,
			})
			if err := c.emit(child, nested, scopes); err != nil {
				return err
			}
		default:
			def.Fields = append(def.Fields, Field{
				Name:     names.next(child.Name),
				Tag:      child.Name,
				Kind:     KindScalar,
				BaseType: storageType(child.Type),
				Required: child.Required,
				Default:  child.Default,
			})
		}
	}

	for _, inc := range el.Includes {
		target, ok := c.set[inc.Filename]
		if !ok {
			return fmt.Errorf("%w: %s included from <%s>", ErrUnresolvedInclude, inc.Filename, el.Name)
		}
		def.Fields = append(def.Fields, Field{
			Name:     names.next(strcase.ToSnake(target.Name)),
			Tag:      target.Name,
			Kind:     KindInclude,
			BaseType: topLevelName(c.opts.Prefix, inc.Filename),
			Required: inc.Required,
		})
	}

	if el.Type != "" {
		def.Fields = append(def.Fields, Field{
			Name:     textField,
			Kind:     KindText,
			BaseType: "string",
			Required: schema.One,
			Default:  el.Default,
		})
	}

	c.types[idx] = def
	c.log.Debug("generated type",
		zap.String("type", typeName),
		zap.String("file", el.SourceFile),
		zap.Int("fields", len(def.Fields)))
	return nil
}

// resolveRef finds the type a ref slot stands for: the nearest enclosing
// element with that tag, else the top-level element with that tag.
func (c *compiler) resolveRef(ref string, scopes []scope) (string, error) {
	for i := len(scopes) - 1; i >= 0; i-- {
		if scopes[i].tag == ref {
			return scopes[i].typeName, nil
		}
	}
	if file, _, ok := c.set.Root(ref); ok {
		return topLevelName(c.opts.Prefix, file), nil
	}
	return "", fmt.Errorf("%w: ref=%q", ErrUnresolvedReference, ref)
}

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// breakCycles walks by-value struct edges and puts every back edge behind a
// pointer, so no generated type contains itself by value.
func (c *compiler) breakCycles() {
	states := make([]visitState, len(c.types))

	var visit func(int)
	visit = func(i int) {
		states[i] = stateVisiting
		def := &c.types[i]
		for f := range def.Fields {
			field := &def.Fields[f]
			if field.Indirect || field.Required != schema.One {
				continue
			}
			if field.Kind != KindStruct && field.Kind != KindInclude {
				continue
			}
			j, ok := c.byName[field.BaseType]
			if !ok {
				continue
			}
			switch states[j] {
			case stateVisiting:
				field.Indirect = true
				c.log.Info("breaking by-value cycle",
					zap.String("type", def.Name),
					zap.String("field", field.Name),
					zap.String("target", field.BaseType))
			case stateDone:
			default:
				visit(j)
			}
		}
		states[i] = stateDone
	}

	for i := range c.types {
		if states[i] == 0 {
			visit(i)
		}
	}
}

func docLines(desc string) []string {
	var lines []string
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" && (len(lines) == 0 || lines[len(lines)-1] == "") {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
