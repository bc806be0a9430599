// Package config handles the odrgen manifest: which schema files are
// translated, and where templates and outputs live.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CognitoIQ/odrgen/hppgen"
	"github.com/CognitoIQ/odrgen/internal/commandline"
	"github.com/CognitoIQ/odrgen/xsdmap"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the current version of the manifest format.
const CurrentVersion = 1

// RootEnv names the environment variable holding the root directory
// the default manifest is resolved against.
const RootEnv = "ODRGEN_ROOT"

// Config represents an odrgen.yaml manifest.
type Config struct {
	Version     int      `yaml:"version"`
	SchemaDir   string   `yaml:"schema_dir"`
	OutputDir   string   `yaml:"output_dir"`
	TemplateDir string   `yaml:"template_dir"`
	Template    string   `yaml:"template,omitempty"`
	Types       []string `yaml:"types,omitempty"`
	Files       []File   `yaml:"files"`
}

// A File is one schema to translate. Path is relative to SchemaDir
// unless absolute; Name is the base name of the outputs.
type File struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// Default returns the manifest for the OpenDRIVE 1.7 schema set, with
// the schemas in ../OpenDrive1_7_0 next to root.
func Default(root string) *Config {
	return &Config{
		Version:     CurrentVersion,
		SchemaDir:   filepath.Join(root, "..", "OpenDrive1_7_0"),
		OutputDir:   filepath.Join(root, "generated"),
		TemplateDir: filepath.Join(root, "templates"),
		Template:    hppgen.DefaultTemplate,
		Files: []File{
			{"opendrive_17_core.xsd", "Core"},
			{"opendrive_17_road.xsd", "Road"},
			{"opendrive_17_lane.xsd", "Lane"},
			{"opendrive_17_junction.xsd", "Junction"},
			{"opendrive_17_object.xsd", "Object"},
			{"opendrive_17_signal.xsd", "Signal"},
			{"opendrive_17_railroad.xsd", "Railroad"},
		},
	}
}

// Root returns the root directory from the environment, falling back to
// the .env file in the working directory and then to ".".
func Root(getenv func(string) string) string {
	if root := getenv(RootEnv); root != "" {
		return root
	}
	if env, err := godotenv.Read(); err == nil && env[RootEnv] != "" {
		return env[RootEnv]
	}
	return "."
}

// Load reads a Config from a file path. Relative directories in the
// manifest are resolved against the directory containing it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	for _, dir := range []*string{&cfg.SchemaDir, &cfg.OutputDir, &cfg.TemplateDir} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
	}
	if cfg.Template == "" {
		cfg.Template = hppgen.DefaultTemplate
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return errors.New("unsupported config version")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if len(c.Files) == 0 {
		return errors.New("no schema files configured")
	}
	seen := make(map[string]bool, len(c.Files))
	for _, f := range c.Files {
		if f.Path == "" || f.Name == "" {
			return fmt.Errorf("schema file %q: path and name are required", f.Path)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate output name %q", f.Name)
		}
		seen[f.Name] = true
	}
	if _, err := c.TypeRules(); err != nil {
		return err
	}
	return nil
}

// TypeRules parses the extra type rules of the manifest.
func (c *Config) TypeRules() ([]xsdmap.TypeRule, error) {
	rules := make([]xsdmap.TypeRule, 0, len(c.Types))
	for _, s := range c.Types {
		r, err := commandline.ParseTypeRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Targets returns the schema files in manifest order, with paths
// resolved against SchemaDir.
func (c *Config) Targets() []hppgen.Target {
	targets := make([]hppgen.Target, 0, len(c.Files))
	for _, f := range c.Files {
		path := f.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.SchemaDir, path)
		}
		targets = append(targets, hppgen.Target{Name: f.Name, Schema: path})
	}
	return targets
}

// Options returns the hppgen options the manifest describes. Empty
// directories and template names leave the hppgen defaults in place.
func (c *Config) Options() ([]hppgen.Option, error) {
	rules, err := c.TypeRules()
	if err != nil {
		return nil, err
	}
	var opts []hppgen.Option
	if c.OutputDir != "" {
		opts = append(opts, hppgen.OutputDir(c.OutputDir))
	}
	if c.TemplateDir != "" {
		opts = append(opts, hppgen.TemplateDir(c.TemplateDir))
	}
	if c.Template != "" {
		opts = append(opts, hppgen.Template(c.Template))
	}
	return append(opts, hppgen.TypeRules(rules...)), nil
}
