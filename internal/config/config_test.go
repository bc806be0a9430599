package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CognitoIQ/odrgen/hppgen"
	"github.com/CognitoIQ/odrgen/xsdmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "odrgen.yaml")

	cfg := Config{
		Version:     1,
		SchemaDir:   "schemas",
		OutputDir:   "/abs/generated",
		TemplateDir: "templates",
		Types:       []string{"xs:boolean -> bool"},
		Files:       []File{{Path: "core.xsd", Name: "Core"}},
	}
	require.NoError(t, cfg.Save(cfgPath))

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, filepath.Join(tmpDir, "schemas"), loaded.SchemaDir)
	assert.Equal(t, "/abs/generated", loaded.OutputDir)
	assert.Equal(t, filepath.Join(tmpDir, "templates"), loaded.TemplateDir)
	assert.Equal(t, hppgen.DefaultTemplate, loaded.Template)
	assert.Equal(t, cfg.Types, loaded.Types)
	assert.Equal(t, cfg.Files, loaded.Files)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unterminated"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	files := []File{{Path: "a.xsd", Name: "A"}}
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid config",
			cfg:  Config{Version: 1, OutputDir: "out", Files: files},
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, OutputDir: "out", Files: files},
			wantErr: "unsupported config version",
		},
		{
			name:    "no output",
			cfg:     Config{Version: 1, Files: files},
			wantErr: "output_dir is required",
		},
		{
			name:    "no files",
			cfg:     Config{Version: 1, OutputDir: "out"},
			wantErr: "no schema files configured",
		},
		{
			name:    "unnamed file",
			cfg:     Config{Version: 1, OutputDir: "out", Files: []File{{Path: "a.xsd"}}},
			wantErr: `schema file "a.xsd": path and name are required`,
		},
		{
			name: "duplicate name",
			cfg: Config{Version: 1, OutputDir: "out", Files: []File{
				{Path: "a.xsd", Name: "A"}, {Path: "b.xsd", Name: "A"},
			}},
			wantErr: `duplicate output name "A"`,
		},
		{
			name:    "bad type rule",
			cfg:     Config{Version: 1, OutputDir: "out", Files: files, Types: []string{"bool"}},
			wantErr: `invalid type rule "bool"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default("/src/esmini")
	require.NoError(t, cfg.Validate())

	targets := cfg.Targets()
	require.Len(t, targets, 7)
	assert.Equal(t, hppgen.Target{
		Name:   "Core",
		Schema: filepath.Join("/src", "OpenDrive1_7_0", "opendrive_17_core.xsd"),
	}, targets[0])
	assert.Equal(t, "Railroad", targets[6].Name)
	assert.Equal(t, filepath.Join("/src/esmini", "generated"), cfg.OutputDir)
	assert.Equal(t, filepath.Join("/src/esmini", "templates"), cfg.TemplateDir)
}

func TestTargetsKeepAbsolutePaths(t *testing.T) {
	cfg := Config{SchemaDir: "/schemas", Files: []File{
		{Path: "/elsewhere/x.xsd", Name: "X"},
		{Path: "y.xsd", Name: "Y"},
	}}
	assert.Equal(t, []hppgen.Target{
		{Name: "X", Schema: "/elsewhere/x.xsd"},
		{Name: "Y", Schema: filepath.Join("/schemas", "y.xsd")},
	}, cfg.Targets())
}

func TestTypeRules(t *testing.T) {
	cfg := Config{Types: []string{"xs:boolean -> bool", "xs:date->std::string"}}
	rules, err := cfg.TypeRules()
	require.NoError(t, err)
	assert.Equal(t, []xsdmap.TypeRule{
		{From: "xs:boolean", To: "bool"},
		{From: "xs:date", To: "std::string"},
	}, rules)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	cfg.OutputDir, cfg.TemplateDir, cfg.Template = "out", "tmpl", "x.j2"
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 4)
}

func TestOptionsKeepDefaultTemplateDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.Mkdir("templates", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("templates", hppgen.DefaultTemplate), []byte("{{.Name}}"), 0o600))
	require.NoError(t, os.WriteFile("x.xsd", []byte("<schema/>"), 0o600))

	cfg := Config{Version: 1, SchemaDir: dir, OutputDir: "out", Files: []File{{Path: "x.xsd", Name: "X"}}}
	require.NoError(t, cfg.Validate())
	opts, err := cfg.Options()
	require.NoError(t, err)

	gen := new(hppgen.Config)
	gen.Option(hppgen.DefaultOptions...)
	gen.Option(opts...)
	require.NoError(t, gen.Generate(cfg.Targets()...))

	hpp, err := os.ReadFile(filepath.Join("out", "X.hpp"))
	require.NoError(t, err)
	assert.Equal(t, "X", string(hpp))
}

func TestRoot(t *testing.T) {
	env := map[string]string{RootEnv: "/from/env"}
	assert.Equal(t, "/from/env", Root(func(k string) string { return env[k] }))

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	none := func(string) string { return "" }
	assert.Equal(t, ".", Root(none))

	require.NoError(t, os.WriteFile(".env", []byte(RootEnv+"=/from/dotenv\n"), 0o600))
	assert.Equal(t, "/from/dotenv", Root(none))
}
