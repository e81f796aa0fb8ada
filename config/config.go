package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are searched in order in every directory.
var configNames = []string{
	"jobslots.yml",
	"jobslots.yaml",
	"jobslots.toml",
	".jobslots.yml",
	".jobslots.yaml",
}

// Load reads, defaults and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, FormatOf(path))
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}
	cfg.path = path
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// LoadFromBytes parses configuration data. format is "yaml" or "toml".
func LoadFromBytes(data []byte, format string) (*Config, error) {
	cfg, err := parse(data, format)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault finds and loads the configuration for the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger loads configuration in layers:
// 1. Global config (~/.config/jobslots/jobslots.yml) - base layer
// 2. Project config (jobslots.yml found from startDir upward) - overrides global
// 3. Local override (jobslots.override.yml next to the project config) - overrides all
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("path", projectPath).Debug("Loading project configuration")

	var final *Config

	globalPath := globalConfigPath()
	if globalPath != "" && globalPath != projectPath {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			global, err := readRaw(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to parse global configuration, continuing without it")
			} else {
				global.resolvePaths(filepath.Dir(globalPath))
				final = global
			}
		}
	}

	project, err := readRaw(projectPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
			WithDetail("path", projectPath)
	}
	project.resolvePaths(filepath.Dir(projectPath))

	if final == nil {
		final = project
	} else {
		logger.Debug("Merging project configuration over global configuration")
		final = mergeConfigs(final, project)
	}

	projectDir := filepath.Dir(projectPath)
	for _, name := range []string{"jobslots.override.yml", "jobslots.override.yaml", "jobslots.override.toml"} {
		overridePath := filepath.Join(projectDir, name)
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}
		logger.WithField("path", overridePath).Debug("Applying override configuration")
		override, err := readRaw(overridePath)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse override config").
				WithDetail("path", overridePath)
		}
		override.resolvePaths(projectDir)
		final = mergeConfigs(final, override)
	}

	final.path = projectPath
	final.SetDefaults()
	if err := final.Validate(); err != nil {
		return nil, err
	}
	return final, nil
}

// FindConfigFile searches startDir and its parents for a config file,
// falling back to the global config.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if global := globalConfigPath(); global != "" {
		if info, err := os.Stat(global); err == nil && !info.IsDir() {
			return global, nil
		}
	}

	return "", errors.ConfigNotFound(startDir)
}

// FormatOf returns "toml" for .toml paths and "yaml" otherwise.
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, FormatOf(path))
}

func parse(data []byte, format string) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var cfg Config
	switch format {
	case "toml":
		if err := toml.Unmarshal(expanded, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML config")
		}
		// TOML has no inline capture; decode the whole document again for
		// extension sections.
		var raw map[string]interface{}
		if err := toml.Unmarshal(expanded, &raw); err == nil {
			cfg.Extensions = extensionsOf(raw)
		}
	default:
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML config")
		}
	}
	return &cfg, nil
}

// knownKeys are the top-level keys Config decodes itself.
var knownKeys = map[string]bool{
	"version": true, "locale": true, "catalog": true, "state": true,
	"debug": true, "department_order": true, "watch": true,
}

func extensionsOf(raw map[string]interface{}) map[string]interface{} {
	ext := make(map[string]interface{})
	for k, v := range raw {
		if !knownKeys[k] {
			ext[k] = v
		}
	}
	return ext
}

// resolvePaths makes relative catalog/state paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	if c.Catalog != "" && !filepath.IsAbs(c.Catalog) {
		c.Catalog = filepath.Join(dir, c.Catalog)
	}
	if c.State != "" && !filepath.IsAbs(c.State) {
		c.State = filepath.Join(dir, c.State)
	}
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment values.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

func globalConfigPath() string {
	dir := paths.ConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range []string{"jobslots.yml", "jobslots.yaml", "jobslots.toml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, "jobslots.yml")
}
