// Command sdfgen compiles SDFormat schema files into Go types.
//
//	sdfgen -out zz_generated.go -package sdf
//	sdfgen -config sdfgen.yaml -schema-dir ./schemas/1.10
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"sdformat-go/internal/codegen"
	"sdformat-go/internal/config"
	"sdformat-go/internal/logging"
	"sdformat-go/internal/schema"
	"sdformat-go/schemas"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatalf("sdfgen: %v", err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("sdfgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file path")
	schemaDir := fs.String("schema-dir", "", "schema directory (default: bundled schema)")
	version := fs.String("version", "", "bundled schema version")
	out := fs.String("out", "", "output file")
	pkg := fs.String("package", "", "package clause of the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	gen := cfg.Generator
	override(&gen.SchemaDir, *schemaDir)
	override(&gen.Version, *version)
	override(&gen.Output, *out)
	override(&gen.Package, *pkg)
	if gen.Output == "" {
		gen.Output = "zz_generated.go"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	set, err := loadSchema(gen)
	if err != nil {
		return err
	}

	opts := codegen.DefaultOptions()
	opts.Logger = logger
	if gen.Package != "" {
		opts.Package = gen.Package
	}
	if gen.TypePrefix != "" {
		opts.Prefix = gen.TypePrefix
	}
	if gen.Exclude != nil {
		opts.Exclude = gen.Exclude
	}
	if gen.OpenAttrs != nil {
		opts.OpenAttrs = gen.OpenAttrs
	}

	res, err := codegen.Compile(set, opts)
	if err != nil {
		return err
	}
	if err := writeFile(gen.Output, res.Source); err != nil {
		return err
	}

	logger.Info("generated types",
		zap.String("output", gen.Output),
		zap.Int("files", len(set)),
		zap.Int("types", len(res.Types)))
	return nil
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

func loadSchema(gen config.GeneratorConfig) (schema.Set, error) {
	if gen.SchemaDir != "" {
		return schema.LoadFS(os.DirFS(gen.SchemaDir), ".")
	}
	version := gen.Version
	if version == "" {
		version = schemas.DefaultVersion
	}
	return schemas.Load(version)
}

// writeFile replaces path atomically so a failed run never leaves a
// truncated file behind.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sdfgen-*.go")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
