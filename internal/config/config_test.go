package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/lox/internal/config"
	"go.followtheprocess.codes/lox/internal/interpreter"
	"go.followtheprocess.codes/test"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	test.Ok(t, cfg.Validate())
	test.Equal(t, cfg.MaxDepth, config.DefaultMaxDepth)
	test.Equal(t, cfg.Prompt, config.DefaultPrompt)
	test.Equal(t, cfg.Policy(), interpreter.DefaultPolicy())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string        // Name of the test case
		file     string        // Name of the config file
		contents string        // Contents of the config file
		errMsg   string        // If we wanted an error, what should it say
		want     config.Config // Expected config
		wantErr  bool          // Whether we want an error
	}{
		{
			name: "toml",
			file: "lox.toml",
			contents: `
prompt = "lox> "
max-depth = 50

[globals]
allow-redefine = false
allow-assign = true
`,
			want: config.Config{
				Prompt:      "lox> ",
				HistoryFile: config.DefaultHistoryFile,
				Globals:     config.Globals{AllowRedefine: false, AllowAssign: true},
				MaxDepth:    50,
			},
		},
		{
			name: "yaml",
			file: "lox.yaml",
			contents: `
historyFile: ""
globals:
  allowAssign: false
`,
			want: config.Config{
				Prompt:      config.DefaultPrompt,
				HistoryFile: "",
				Globals:     config.Globals{AllowRedefine: true, AllowAssign: false},
				MaxDepth:    config.DefaultMaxDepth,
			},
		},
		{
			name:     "yml",
			file:     "lox.yml",
			contents: "maxDepth: 0\n",
			want: config.Config{
				Prompt:      config.DefaultPrompt,
				HistoryFile: config.DefaultHistoryFile,
				Globals:     config.Globals{AllowRedefine: true, AllowAssign: true},
				MaxDepth:    0,
			},
		},
		{
			name:     "empty file is all defaults",
			file:     "lox.toml",
			contents: "",
			want:     config.Default(),
		},
		{
			name:     "bad toml",
			file:     "lox.toml",
			contents: "prompt = ",
			wantErr:  true,
			errMsg:   "could not decode TOML config",
		},
		{
			name:     "bad yaml",
			file:     "lox.yaml",
			contents: "globals: [oops",
			wantErr:  true,
			errMsg:   "could not decode YAML config",
		},
		{
			name:     "negative depth",
			file:     "lox.toml",
			contents: "max-depth = -1\n",
			wantErr:  true,
			errMsg:   "max-depth cannot be negative, got -1",
		},
		{
			name:     "unsupported",
			file:     "lox.json",
			contents: "{}",
			wantErr:  true,
			errMsg:   `unsupported config file format ".json"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			test.Ok(t, os.WriteFile(path, []byte(tt.contents), 0o644))

			got, err := config.Load(path)
			test.WantErr(t, err, tt.wantErr)

			if tt.wantErr {
				test.True(
					t,
					strings.Contains(err.Error(), tt.errMsg),
					test.Context("error %q did not contain %q", err.Error(), tt.errMsg),
				)

				return
			}

			test.Equal(t, got, tt.want)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "lox.toml"))
	test.Err(t, err)
}

func TestDiscover(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		dir := t.TempDir()

		_, ok, err := config.Find(dir)
		test.Ok(t, err)
		test.True(t, !ok)

		cfg, err := config.Discover(dir)
		test.Ok(t, err)
		test.Equal(t, cfg, config.Default())
	})

	t.Run("toml preferred", func(t *testing.T) {
		dir := t.TempDir()
		test.Ok(t, os.WriteFile(filepath.Join(dir, "lox.yaml"), []byte("maxDepth: 2\n"), 0o644))
		test.Ok(t, os.WriteFile(filepath.Join(dir, "lox.toml"), []byte("max-depth = 1\n"), 0o644))

		path, ok, err := config.Find(dir)
		test.Ok(t, err)
		test.True(t, ok)
		test.Equal(t, path, filepath.Join(dir, "lox.toml"))

		cfg, err := config.Discover(dir)
		test.Ok(t, err)
		test.Equal(t, cfg.MaxDepth, 1)
	})
}

func TestWrite(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDepth = 256
	cfg.Globals.AllowAssign = false

	buf := &bytes.Buffer{}
	test.Ok(t, config.Write(buf, cfg))

	written := buf.String()
	test.True(t, strings.Contains(written, "max-depth = 256"), test.Context("got:\n%s", written))
	test.True(t, strings.Contains(written, "[globals]"), test.Context("got:\n%s", written))

	// What we write, we must be able to read back
	path := filepath.Join(t.TempDir(), "lox.toml")
	test.Ok(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := config.Load(path)
	test.Ok(t, err)
	test.Equal(t, loaded, cfg)
}
