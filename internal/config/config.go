// Package config loads nucleon settings with viper.
//
// Precedence, highest first: command-line flags, NUCLEON_* environment
// variables (a .env file is loaded into the environment first), the
// nucleon.yaml config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/nucleon/semf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// EnvPrefix prefixes every environment variable, e.g. NUCLEON_OUTPUT.
const EnvPrefix = "nucleon"

// ErrOutput indicates an unknown output format.
var ErrOutput = errors.New("config: output must be text, json or yaml")

// Config is the resolved configuration.
type Config struct {
	Output       string            `mapstructure:"output" yaml:"output"`
	LogLevel     string            `mapstructure:"log_level" yaml:"log_level"`
	Coefficients semf.Coefficients `mapstructure:"coefficients" yaml:"coefficients"`
}

// Defaults returns the built-in settings as viper keys.
func Defaults() map[string]any {
	c := semf.DefaultCoefficients()

	return map[string]any{
		"output":                 OutputText,
		"log_level":              "warn",
		"coefficients.volume":    c.Volume,
		"coefficients.surface":   c.Surface,
		"coefficients.coulomb":   c.Coulomb,
		"coefficients.asymmetry": c.Asymmetry,
		"coefficients.pairing":   c.Pairing,
	}
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"output":    "output",
	"log-level": "log_level",
}

// Load resolves the configuration for cmd. configFile, when non-empty, must
// exist; otherwise nucleon.yaml is searched in the user config directory,
// the system directory and the working directory, and a missing file is fine.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("nucleon")
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}

	return c, c.Validate()
}

// Validate checks the output format and the coefficients.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%q: %w", c.Output, ErrOutput)
	}

	return c.Coefficients.Validate()
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// searchDirs lists the directories searched for nucleon.yaml, in order.
func searchDirs() []string {
	var dirs []string
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "nucleon"))
	}
	if runtime.GOOS == "windows" {
		dirs = append(dirs, filepath.Join(os.Getenv("ProgramData"), "nucleon"))
	} else {
		dirs = append(dirs, "/etc/nucleon")
	}

	return append(dirs, ".")
}
