package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Library configuration
	Library        string
	MinYear        int
	FreeTextGenres bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. BOOKSHELF_* environment variables
//  3. .env and .env.local files
//  4. Config file (explicit path, or .bookshelf.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("library", constants.DefaultLibraryFile)
	v.SetDefault("min_year", constants.MinPublicationYear)
	v.SetDefault("free_text_genres", false)
	v.SetDefault("log.format", "auto")
	v.SetDefault("log.output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot parse config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Library:        expandHome(v.GetString("library")),
		MinYear:        v.GetInt("min_year"),
		FreeTextGenres: v.GetBool("free_text_genres"),

		LogLevel:  firstNonEmpty(v.GetString("log.level"), os.Getenv("LOG_LEVEL")),
		LogFormat: firstNonEmpty(os.Getenv("LOG_FORMAT"), v.GetString("log.format")),
		LogOutput: firstNonEmpty(os.Getenv("LOG_OUTPUT"), v.GetString("log.output")),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values the library cannot recover from.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Library) == "" {
		return errors.NewConfigError("library", "path must not be empty", nil)
	}
	if c.MinYear < 0 {
		return errors.NewConfigError("min_year", "must not be negative", nil)
	}
	return nil
}

// Flags carries the root persistent flag values and whether each was set
// on the command line.
type Flags struct {
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string
	Library  string

	LibrarySet bool
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over the config file and env vars.
func (c *Config) UpdateFromFlags(f Flags) {
	c.Verbose = f.Verbose || c.Verbose
	c.Quiet = f.Quiet || c.Quiet
	c.NoColor = f.NoColor || c.NoColor
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.LibrarySet && f.Library != "" {
		c.Library = expandHome(f.Library)
	}
}

// loadEnvFiles loads environment variables from .env files. Variables
// already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
