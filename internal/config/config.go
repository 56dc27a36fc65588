// Package config loads routedoc generation settings from a JSON or YAML
// file, with environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/oaserrors"
	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v4"
)

// Environment variables that override file settings.
const (
	EnvBasePath   = "ROUTEDOC_BASE_PATH"
	EnvOutputFile = "ROUTEDOC_OUTPUT_FILE"
	EnvAPIFolder  = "ROUTEDOC_API_FOLDER"
)

// Defaults applied when a setting is absent.
const (
	DefaultAPIFolder    = "api"
	DefaultOutputFile   = "public/swagger.json"
	DefaultPublicFolder = "public"
)

// Config holds the settings of one generation run.
type Config struct {
	// APIFolder holds one Go file per route
	APIFolder string
	// SchemaFolders are scanned for shared schema documents
	SchemaFolders []string
	// Definition is the base definition (openapi or swagger header, info,
	// servers, ...) that annotations are layered under
	Definition map[string]any
	// DefinitionFile is a YAML or JSON document used when Definition is empty
	DefinitionFile string
	// OutputFile is where the CLI writes the specification
	OutputFile string
	// APIs, when set, replaces the default glob list
	APIs []string
	// BasePath is the deployment base path advertised under servers
	BasePath string
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		APIFolder:  DefaultAPIFolder,
		OutputFile: DefaultOutputFile,
	}
}

// Load reads the config file at path. Keys are camelCase, matching the
// Config field names. The definition is copied verbatim; all other settings
// may be overridden by ROUTEDOC_ environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("apiFolder", DefaultAPIFolder)
	v.SetDefault("outputFile", DefaultOutputFile)
	v.SetEnvPrefix("routedoc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v, "basePath", EnvBasePath)
	bindEnv(v, "outputFile", EnvOutputFile)
	bindEnv(v, "apiFolder", EnvAPIFolder)

	if err := v.ReadInConfig(); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "cannot read config file", Cause: err}
	}

	cfg := &Config{
		APIFolder:      v.GetString("apiFolder"),
		SchemaFolders:  v.GetStringSlice("schemaFolders"),
		DefinitionFile: v.GetString("definitionFile"),
		OutputFile:     v.GetString("outputFile"),
		APIs:           v.GetStringSlice("apis"),
		BasePath:       v.GetString("basePath"),
	}

	// viper folds keys to lower case, which would corrupt definition keys
	// such as securitySchemes, so the definition is decoded separately.
	def, err := readDefinition(path)
	if err != nil {
		return nil, err
	}
	cfg.Definition = def
	return cfg, nil
}

func bindEnv(v *viper.Viper, key, env string) {
	// BindEnv only fails when called without a key
	_ = v.BindEnv(key, env)
}

func readDefinition(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "cannot read config file", Cause: err}
	}
	raw, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "config must be a mapping"}
	}
	def, present := root["definition"]
	if !present || def == nil {
		return nil, nil
	}
	m, ok := def.(map[string]any)
	if !ok {
		return nil, &oaserrors.ConfigError{Option: "definition", Value: path, Message: "definition must be a mapping"}
	}
	return m, nil
}

// Decode decodes a JSON or YAML document, choosing the decoder by the
// extension of name. Mappings are normalized to map[string]any.
func Decode(name string, data []byte) (any, error) {
	var raw any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &oaserrors.ConfigError{Option: "file", Value: name, Message: "invalid JSON", Cause: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &oaserrors.ConfigError{Option: "file", Value: name, Message: "invalid YAML", Cause: err}
		}
	default:
		return nil, &oaserrors.ConfigError{Option: "file", Value: name, Message: "unsupported file type, expected .json, .yaml or .yml"}
	}
	return maputil.Normalize(raw), nil
}

// ScanFolders returns the API folder followed by the schema folders.
func (c *Config) ScanFolders() []string {
	return append([]string{c.APIFolder}, c.SchemaFolders...)
}

// excludePrefix negates a glob, see assembler.Expand.
const excludePrefix = "!"

// Globs returns the file globs the assembler scans: APIs when set,
// otherwise DefaultGlobs for the scan folders. The output file is always
// excluded so a previous run is never read back in.
func (c *Config) Globs() []string {
	var globs []string
	if len(c.APIs) > 0 {
		globs = append(globs, c.APIs...)
	} else {
		globs = DefaultGlobs(c.ScanFolders()...)
	}
	if c.OutputFile != "" && c.OutputFile != "-" {
		globs = append(globs, excludePrefix+filepath.ToSlash(filepath.Clean(c.OutputFile)))
	}
	return globs
}

// DefaultGlobs returns, for every folder, globs matching Go sources, JSON
// documents and *.swagger.yaml documents below it, followed by the JSON and
// *.swagger.yaml documents of the public folder.
func DefaultGlobs(folders ...string) []string {
	var out []string
	for _, folder := range folders {
		if folder == "" {
			continue
		}
		folder = filepath.ToSlash(filepath.Clean(folder))
		out = append(out,
			folder+"/**/*.go",
			folder+"/**/*.json",
			folder+"/**/*.swagger.yaml",
		)
	}
	return append(out,
		DefaultPublicFolder+"/**/*.swagger.yaml",
		DefaultPublicFolder+"/**/*.json",
	)
}

// ResolveDefinition returns the inline definition, or loads DefinitionFile
// when no inline definition is set.
func (c *Config) ResolveDefinition() (map[string]any, error) {
	if len(c.Definition) > 0 || c.DefinitionFile == "" {
		return c.Definition, nil
	}
	data, err := os.ReadFile(c.DefinitionFile)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "definitionFile", Value: c.DefinitionFile, Message: "cannot read definition", Cause: err}
	}
	raw, err := Decode(c.DefinitionFile, data)
	if err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.ConfigError{Option: "definitionFile", Value: c.DefinitionFile, Message: "definition must be a mapping"}
	}
	return m, nil
}
