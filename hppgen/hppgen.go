// Package hppgen renders C++ headers from translated XML schema.
//
// For every schema a Config writes two files to its output directory:
// NAME.hpp.json, the translated document as indented JSON, and
// NAME.hpp, the document rendered through the header template. The
// JSON dump is written first, so a failing template still leaves it
// behind for inspection.
//
// Templates use text/template syntax. The template context is an
// *xsdmap.Document; output is not escaped and referencing an unknown
// map key is an error.
package hppgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/CognitoIQ/odrgen/xsdmap"
)

// A Target names a schema file and the base name of its outputs.
type Target struct {
	Name   string
	Schema string
}

// Generate translates and emits each target in order. It stops at the
// first failure; outputs of earlier targets are kept.
func (cfg *Config) Generate(targets ...Target) error {
	for _, t := range targets {
		cfg.progressf("Parsing:  %s\n", t.Name)
		doc, err := cfg.Translate(t)
		if err != nil {
			return err
		}
		if err := cfg.Emit(doc); err != nil {
			return err
		}
		cfg.progressf("Generated: %s\n", t.Name)
	}
	return nil
}

// Translate reads and translates the schema of t using the configured
// type rules.
func (cfg *Config) Translate(t Target) (*xsdmap.Document, error) {
	tr := xsdmap.Translator{TypeRules: cfg.typeRules}
	cfg.debugf("read %s", t.Schema)
	doc, err := tr.ParseFile(t.Name, t.Schema)
	if err != nil {
		return nil, err
	}
	cfg.debugf("%s: %d top-level declarations", t.Name, doc.Data.Len())
	return doc, nil
}

// Emit writes the JSON dump and the rendered header of doc, replacing
// any earlier output of the same name.
func (cfg *Config) Emit(doc *xsdmap.Document) error {
	if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out := filepath.Join(cfg.outputDir, doc.Name+".hpp")

	if err := cfg.writeDump(out+".json", doc); err != nil {
		return err
	}
	tmpl, err := cfg.loadTemplate()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return fmt.Errorf("render %s: %w", doc.Name, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	cfg.logf("wrote %s", out)
	return nil
}

func (cfg *Config) writeDump(path string, doc *xsdmap.Document) error {
	var buf bytes.Buffer
	if err := doc.WriteJSON(&buf); err != nil {
		return fmt.Errorf("dump %s: %w", doc.Name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	cfg.logf("wrote %s", path)
	return nil
}

// loadTemplate parses the header template. It is read again for every
// document.
func (cfg *Config) loadTemplate() (*template.Template, error) {
	path := filepath.Join(cfg.templateDir, cfg.template)
	cfg.debugf("load template %s", path)
	tmpl, err := template.New(filepath.Base(cfg.template)).
		Option("missingkey=error").
		Funcs(cfg.funcs()).
		ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	return tmpl, nil
}

func (cfg *Config) progressf(format string, v ...interface{}) {
	if cfg.progress != nil {
		fmt.Fprintf(cfg.progress, format, v...)
	}
}
