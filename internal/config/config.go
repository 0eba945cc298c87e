package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"localstrings/internal/domain"
	"localstrings/pkg/swift"
)

const (
	DefaultEnumName   = "LocalString"
	DefaultTargetDir  = "Support"
	DefaultExtension  = "swift"
	DefaultLocale     = "en"
	DefaultLogLevel   = "INFO"
	DefaultConfigFile = "localstrings.toml"
)

var extensionPattern = regexp.MustCompile(`^[A-Za-z0-9_+-]+$`)

type Config struct {
	InputFile    string `toml:"-"`
	EnumName     string `toml:"enum_name"`
	TargetDir    string `toml:"target_dir"`
	SearchDir    string `toml:"search_dir"`
	Extension    string `toml:"extension"`
	Locale       string `toml:"locale"`
	ExportDir    string `toml:"export_dir"`
	ListAllFiles bool   `toml:"list_all_files"`
	LogLevel     string `toml:"log_level"`
}

// Overrides contient les valeurs passées en ligne de commande. Une chaîne vide
// ou un ListAllFiles à false laisse les couches inférieures inchangées.
type Overrides struct {
	ConfigFile   string
	InputFile    string
	EnumName     string
	TargetDir    string
	SearchDir    string
	Extension    string
	Locale       string
	ExportDir    string
	ListAllFiles bool
	LogLevel     string
}

// Load charge la configuration depuis les valeurs par défaut, le fichier TOML,
// l'environnement (.env compris) puis o, dans cet ordre, et la valide.
func Load(o Overrides) (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement.
	_ = godotenv.Load()

	cfg := &Config{
		EnumName:  DefaultEnumName,
		TargetDir: DefaultTargetDir,
		Extension: DefaultExtension,
		LogLevel:  DefaultLogLevel,
	}

	path := o.ConfigFile
	if path == "" {
		path = os.Getenv("LOCALSTRINGS_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	cfg.apply(o)

	if cfg.SearchDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: working directory: %w", err)
		}
		cfg.SearchDir = wd
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = cfg.TargetDir
	}
	if cfg.Locale == "" {
		cfg.Locale = localeFromPath(cfg.InputFile)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LocaleTag analyse Locale. Seul export s'en sert : une locale invalide est
// signalée là, pas par Load.
func (c *Config) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("config: locale %q: %w: %w", c.Locale, domain.ErrInvalidConfig, err)
	}
	return tag, nil
}

// GeneratedFileName est le nom du fichier écrit par `generate`.
func (c *Config) GeneratedFileName() string { return c.EnumName + "." + c.Extension }

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w: %w", path, domain.ErrInvalidConfig, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("config: parse %s: %w: %w", path, domain.ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	strs := map[string]*string{
		"LOCALSTRINGS_ENUM_NAME":  &c.EnumName,
		"LOCALSTRINGS_TARGET_DIR": &c.TargetDir,
		"LOCALSTRINGS_SEARCH_DIR": &c.SearchDir,
		"LOCALSTRINGS_EXTENSION":  &c.Extension,
		"LOCALSTRINGS_LOCALE":     &c.Locale,
		"LOCALSTRINGS_EXPORT_DIR": &c.ExportDir,
		"LOCALSTRINGS_LOG_LEVEL":  &c.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := os.LookupEnv("LOCALSTRINGS_LIST_ALL_FILES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: LOCALSTRINGS_LIST_ALL_FILES (%q): %w", v, domain.ErrInvalidConfig)
		}
		c.ListAllFiles = b
	}
	return nil
}

func (c *Config) apply(o Overrides) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.InputFile, o.InputFile)
	set(&c.EnumName, o.EnumName)
	set(&c.TargetDir, o.TargetDir)
	set(&c.SearchDir, o.SearchDir)
	set(&c.Extension, o.Extension)
	set(&c.Locale, o.Locale)
	set(&c.ExportDir, o.ExportDir)
	set(&c.LogLevel, o.LogLevel)
	if o.ListAllFiles {
		c.ListAllFiles = true
	}
}

// validate applique les règles communes à toutes les commandes. search_dir et
// locale sont vérifiés par la commande qui les utilise.
func (c *Config) validate() error {
	if !swift.IsIdentifier(c.EnumName) {
		return fmt.Errorf("config: enum_name %q is not a Swift identifier: %w", c.EnumName, domain.ErrInvalidConfig)
	}

	if !extensionPattern.MatchString(c.Extension) {
		return fmt.Errorf("config: extension %q must be a bare suffix such as swift: %w", c.Extension, domain.ErrInvalidConfig)
	}

	if strings.TrimSpace(c.TargetDir) == "" {
		return fmt.Errorf("config: target_dir cannot be empty: %w", domain.ErrInvalidConfig)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, domain.ErrInvalidConfig)
	}

	return nil
}

// localeFromPath lit la langue d'un chemin de ressource Xcode comme
// Support/fr.lproj/Localizable.strings. Base.lproj et tout autre chemin
// retombent sur DefaultLocale.
func localeFromPath(path string) string {
	dir := filepath.Base(filepath.Dir(path))
	name, ok := strings.CutSuffix(dir, ".lproj")
	if !ok || name == "" || strings.EqualFold(name, "Base") {
		return DefaultLocale
	}
	if _, err := language.Parse(name); err != nil {
		return DefaultLocale
	}
	return name
}
