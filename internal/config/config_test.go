package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/consolegrid/table"
)

// MockPlatformProvider is a test double for PlatformProvider
type MockPlatformProvider struct {
	OS           string
	EnvVars      map[string]string
	HomeDirPath  string
	HomeDirError error
}

func (m *MockPlatformProvider) GetOS() string {
	return m.OS
}

func (m *MockPlatformProvider) GetEnv(key string) string {
	return m.EnvVars[key]
}

func (m *MockPlatformProvider) UserHomeDir() (string, error) {
	if m.HomeDirError != nil {
		return "", m.HomeDirError
	}
	return m.HomeDirPath, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "plusminus", cfg.Border)
	assert.Equal(t, "left", cfg.Alignment)
	assert.Equal(t, "wrap-word", cfg.Overflow)
	assert.Zero(t, cfg.MinWidth)
	assert.Zero(t, cfg.MaxWidth)
	assert.False(t, cfg.RowBorders)
	assert.Nil(t, cfg.Padding.Left)
}

func TestUserConfigDirWithPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform *MockPlatformProvider
		want     string
	}{
		{
			name: "Windows with APPDATA",
			platform: &MockPlatformProvider{
				OS:      "windows",
				EnvVars: map[string]string{"APPDATA": "/appdata"},
			},
			want: filepath.Join("/appdata", "gridview"),
		},
		{
			name:     "Windows without APPDATA",
			platform: &MockPlatformProvider{OS: "windows"},
			want:     "",
		},
		{
			name:     "macOS",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirPath: "/Users/test"},
			want:     filepath.Join("/Users/test", "Library", "Application Support", "gridview"),
		},
		{
			name:     "macOS UserHomeDir error",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirError: errors.New("no home")},
			want:     "",
		},
		{
			name:     "Linux home",
			platform: &MockPlatformProvider{OS: "linux", HomeDirPath: "/home/test"},
			want:     filepath.Join("/home/test", ".config", "gridview"),
		},
		{
			name: "Linux XDG_CONFIG_HOME",
			platform: &MockPlatformProvider{
				OS:          "linux",
				EnvVars:     map[string]string{"XDG_CONFIG_HOME": "/xdg"},
				HomeDirPath: "/home/test",
			},
			want: filepath.Join("/xdg", "gridview"),
		},
		{
			name:     "Linux UserHomeDir error",
			platform: &MockPlatformProvider{OS: "linux", HomeDirError: errors.New("no home")},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserConfigDirWithPlatform(tt.platform))
		})
	}
}

func TestLoadFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `
border: single
rowBorders: true
minWidth: 20
maxWidth: 80
alignment: center
overflow: cut-word-ellipsis
padding:
  left: 2
  right: 0
colors:
  border: "8"
  header: "#ff8800"
emptyMessage: nothing here
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "single", cfg.Border)
				assert.True(t, cfg.RowBorders)
				assert.Equal(t, 20, cfg.MinWidth)
				assert.Equal(t, 80, cfg.MaxWidth)
				assert.Equal(t, "center", cfg.Alignment)
				assert.Equal(t, "cut-word-ellipsis", cfg.Overflow)
				require.NotNil(t, cfg.Padding.Left)
				assert.Equal(t, 2, *cfg.Padding.Left)
				require.NotNil(t, cfg.Padding.Right)
				assert.Equal(t, 0, *cfg.Padding.Right)
				assert.Nil(t, cfg.Padding.Top)
				assert.Equal(t, "8", cfg.Colors.Border)
				assert.Equal(t, "#ff8800", cfg.Colors.Header)
				assert.Equal(t, "nothing here", cfg.EmptyMessage)
			},
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
border = "double"
maxWidth = 60
overflow = "wrap-char"

[padding]
top = 1

[colors]
title = "12"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "double", cfg.Border)
				assert.Equal(t, 60, cfg.MaxWidth)
				assert.Equal(t, "wrap-char", cfg.Overflow)
				assert.Equal(t, "left", cfg.Alignment, "unset keys keep defaults")
				require.NotNil(t, cfg.Padding.Top)
				assert.Equal(t, 1, *cfg.Padding.Top)
				assert.Equal(t, "12", cfg.Colors.Title)
			},
		},
		{
			name:    "literal border template",
			file:    "template.yaml",
			content: `border: "1234567890abcde"`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "1234567890abcde", cfg.Border)
			},
		},
		{
			name:    "unknown enumerations fall back to defaults",
			file:    "fallback.yaml",
			content: "border: rounded\nalignment: justify\noverflow: scroll\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "plusminus", cfg.Border)
				assert.Equal(t, "left", cfg.Alignment)
				assert.Equal(t, "wrap-word", cfg.Overflow)
			},
		},
		{
			name:    "min above max",
			file:    "widths.yaml",
			content: "minWidth: 50\nmaxWidth: 40\n",
			wantErr: true,
		},
		{
			name:    "negative padding",
			file:    "padding.yaml",
			content: "padding:\n  left: -1\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			file:    "broken.yaml",
			content: "border: [unclosed",
			wantErr: true,
		},
		{
			name:    "invalid toml",
			file:    "broken.toml",
			content: "border = ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.file)
			writeFile(t, path, tt.content)

			cfg, err := LoadFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadPriority(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	platform := &MockPlatformProvider{OS: "linux", HomeDirPath: home}

	cfg, err := LoadWithPlatform(project, platform)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "no files: defaults")

	writeFile(t, filepath.Join(home, ".config", "gridview", "config.toml"), `border = "double"`)
	cfg, err = LoadWithPlatform(project, platform)
	require.NoError(t, err)
	assert.Equal(t, "double", cfg.Border, "user config")

	writeFile(t, filepath.Join(project, ".gridview.yaml"), "border: single\n")
	cfg, err = LoadWithPlatform(project, platform)
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.Border, "project config wins")
}

func TestLoad_DirectoryIsSkipped(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(project, ".gridview.yaml"), 0755))

	cfg, err := LoadWithPlatform(project, &MockPlatformProvider{OS: "linux", HomeDirError: errors.New("no home")})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApply(t *testing.T) {
	left := 0
	cfg := &Config{
		Border:       "single",
		RowBorders:   true,
		MinWidth:     10,
		MaxWidth:     40,
		Alignment:    "right",
		Overflow:     "cut-char",
		Padding:      PaddingConfig{Left: &left},
		Colors:       ColorConfig{Border: "8", Header: "2", Title: "3"},
		EmptyMessage: "empty",
	}

	g := table.NewGrid()
	g.SetTitle("T")
	require.NoError(t, cfg.Apply(g))

	assert.Equal(t, table.SingleLineBorderTemplate, g.Border)
	assert.True(t, g.DisplayBorderBetweenRows)
	assert.Equal(t, 10, g.MinWidth())
	assert.Equal(t, 40, g.MaxWidth())
	assert.Equal(t, table.AlignRight, g.Alignment)
	assert.Equal(t, table.OverflowCutChar, g.Overflow)
	v, ok := g.Padding.Left()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	_, ok = g.Padding.Right()
	assert.False(t, ok)
	assert.Equal(t, "8", string(g.BorderForeground))
	assert.Equal(t, "2", string(g.HeaderRow.ForegroundColor))
	assert.Equal(t, "3", string(g.Title.ForegroundColor))
	assert.Equal(t, "empty", g.EmptyMessage.String())
}

func TestApply_KeepsGridSettings(t *testing.T) {
	g := table.NewGrid()
	g.Border = table.DoubleLineBorderTemplate
	g.Alignment = table.AlignCenter
	g.EmptyMessage = table.NewMultilineText("mine")
	g.HeaderRow.ForegroundColor = "5"
	require.NoError(t, g.SetMaxWidth(30))

	cfg := DefaultConfig()
	cfg.Border = "single"
	cfg.MinWidth = 5
	cfg.MaxWidth = 80
	cfg.Colors.Header = "2"
	cfg.EmptyMessage = "theirs"
	require.NoError(t, cfg.Apply(g))

	assert.Equal(t, table.DoubleLineBorderTemplate, g.Border)
	assert.Equal(t, 0, g.MinWidth())
	assert.Equal(t, 30, g.MaxWidth())

	assert.Equal(t, table.AlignCenter, g.Alignment)
	assert.Equal(t, "mine", g.EmptyMessage.String())
	assert.Equal(t, "5", string(g.HeaderRow.ForegroundColor))
	assert.Equal(t, table.OverflowWrapWord, g.Overflow)
}

func TestApply_RendersWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Border = "none"

	g := table.NewGrid()
	g.AddRow("a", "b")
	require.NoError(t, cfg.Apply(g))

	assert.Equal(t, "         \n  a   b  \n         \n", g.String())
}
