// Package config loads formfill settings from a YAML file, a .env file and
// FORMFILL_* environment variables, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/formfill-go/internal/logging"
	"github.com/ukaji3/formfill-go/pkg/formfill"
	"github.com/ukaji3/formfill-go/pkg/formfill/aggregate"
	"github.com/ukaji3/formfill-go/pkg/formfill/filler"
	"github.com/ukaji3/formfill-go/pkg/formfill/parser"
)

const (
	// DefaultFile is read from the working directory when no path is given.
	DefaultFile = "formfill.yaml"
	// EnvFile is loaded into the environment if present.
	EnvFile = ".env"
	// EnvPrefix starts every environment override.
	EnvPrefix = "FORMFILL_"
)

const defaultConfigYAML = `# formfill configuration
input:
  # CSV field delimiter, a single character.
  delimiter: ","
  # CSV character set: utf-8, windows-1251, koi8-r, ...
  encoding: utf-8
  # Worksheet of xlsx exports. Empty selects the first sheet.
  sheet: ""

answers:
  separator: " / "
  score_marker: Баллы
  score_label: баллы

document:
  placeholder: "[ОТВЕТ]"
  not_specified: Не указано
  name_field: ФИО
  fallback_name: Студент_%d
  file_prefix: справка
  extension: .docx
  auto_template_name: template_auto.docx
  title: СПРАВКА О ПРОХОЖДЕНИИ ОПРОСА
  title_size_pt: 16
  answer_label: "Ответ: "

log:
  level: info
  format: json
  file: ""
`

// InputConfig configures survey export reading.
type InputConfig struct {
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	Sheet     string `yaml:"sheet"`
}

// AnswersConfig configures answer rendering.
type AnswersConfig struct {
	Separator   string `yaml:"separator"`
	ScoreMarker string `yaml:"score_marker"`
	ScoreLabel  string `yaml:"score_label"`
}

// Config models formfill.yaml.
type Config struct {
	Input    InputConfig     `yaml:"input"`
	Answers  AnswersConfig   `yaml:"answers"`
	Document filler.Options  `yaml:"document"`
	Log      logging.Options `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), cfg); err != nil {
		panic(fmt.Sprintf("config: invalid built-in defaults: %v", err))
	}
	return cfg
}

// DefaultYAML returns the annotated built-in configuration.
func DefaultYAML() string {
	return defaultConfigYAML
}

// Load builds the configuration. An empty path reads DefaultFile if it exists.
func Load(path string) (*Config, error) {
	return load(path, EnvFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.readFile(path, explicit); err != nil {
		return nil, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from FORMFILL_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DELIMITER":      &c.Input.Delimiter,
		"ENCODING":       &c.Input.Encoding,
		"SHEET":          &c.Input.Sheet,
		"SEPARATOR":      &c.Answers.Separator,
		"SCORE_MARKER":   &c.Answers.ScoreMarker,
		"SCORE_LABEL":    &c.Answers.ScoreLabel,
		"PLACEHOLDER":    &c.Document.Placeholder,
		"NOT_SPECIFIED":  &c.Document.NotSpecified,
		"NAME_FIELD":     &c.Document.NameField,
		"FALLBACK_NAME":  &c.Document.FallbackName,
		"FILE_PREFIX":    &c.Document.FilePrefix,
		"TEMPLATE_TITLE": &c.Document.Title,
		"LOG_LEVEL":      &c.Log.Level,
		"LOG_FORMAT":     &c.Log.Format,
		"LOG_FILE":       &c.Log.File,
	}
	for name, field := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*field = v
		}
	}

	if v, ok := lookup(EnvPrefix + "TITLE_SIZE_PT"); ok {
		size, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %sTITLE_SIZE_PT: %w", EnvPrefix, err)
		}
		c.Document.TitleSizePt = size
	}
	return nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("config: input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if c.Answers.Separator == "" {
		return errors.New("config: answers.separator is required")
	}
	if c.Document.Placeholder == "" {
		return errors.New("config: document.placeholder is required")
	}
	if c.Document.FilePrefix == "" {
		return errors.New("config: document.file_prefix is required")
	}
	if c.Document.AutoTemplateName == "" {
		return errors.New("config: document.auto_template_name is required")
	}
	if c.Document.TitleSizePt < 0 {
		return fmt.Errorf("config: document.title_size_pt must not be negative, got %v", c.Document.TitleSizePt)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// ToOptions converts the configuration into job options.
func (c *Config) ToOptions() formfill.Options {
	delimiter, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return formfill.Options{
		Parser: parser.Options{
			Comma:    delimiter,
			Encoding: c.Input.Encoding,
			Sheet:    c.Input.Sheet,
		},
		Aggregate: aggregate.Options{
			Separator:   c.Answers.Separator,
			ScoreMarker: c.Answers.ScoreMarker,
			ScoreLabel:  c.Answers.ScoreLabel,
		},
		Filler: c.Document,
	}
}
