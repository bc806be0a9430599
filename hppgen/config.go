package hppgen

import (
	"io"

	"github.com/CognitoIQ/odrgen/xsdmap"
)

// DefaultTemplate is the file name of the header template.
const DefaultTemplate = "hpp_template.j2"

// A Config holds the directories, template and type rules used when
// generating headers from schema documents.
type Config struct {
	logger      Logger
	loglevel    int
	progress    io.Writer
	outputDir   string
	templateDir string
	template    string
	typeRules   []xsdmap.TypeRule
}

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 0 {
		cfg.logger.Printf(format, v...)
	}
}
func (cfg *Config) debugf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 3 {
		cfg.logger.Printf(format, v...)
	}
}

// An Option is used to customize a Config.
type Option func(*Config) Option

// DefaultOptions write headers to "generated" using the template
// "templates/hpp_template.j2".
var DefaultOptions = []Option{
	OutputDir("generated"),
	TemplateDir("templates"),
	Template(DefaultTemplate),
}

// The Option method is used to configure an existing configuration.
// The return value of the Option method can be used to revert the
// final option to its previous setting.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// Types implementing the Logger interface can receive
// debug information from the generation process.
// The Logger interface is implemented by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

// LogOutput specifies an optional Logger for warnings and debug
// information about the generation process.
func LogOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = l
		return LogOutput(prev)
	}
}

// LogLevel sets the verbosity of messages sent to the error log
// configured with the LogOutput option. The level parameter should
// be a positive integer between 1 and 5, with 5 providing the greatest
// verbosity.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

// Progress directs the per-file "Parsing:" and "Generated:" lines
// to w. A nil writer silences them.
func Progress(w io.Writer) Option {
	return func(cfg *Config) Option {
		prev := cfg.progress
		cfg.progress = w
		return Progress(prev)
	}
}

// OutputDir sets the directory headers and JSON dumps are written to.
// It is created when missing.
func OutputDir(dir string) Option {
	return func(cfg *Config) Option {
		prev := cfg.outputDir
		cfg.outputDir = dir
		return OutputDir(prev)
	}
}

// TemplateDir sets the directory the header template is loaded from.
func TemplateDir(dir string) Option {
	return func(cfg *Config) Option {
		prev := cfg.templateDir
		cfg.templateDir = dir
		return TemplateDir(prev)
	}
}

// Template sets the file name of the header template.
func Template(name string) Option {
	return func(cfg *Config) Option {
		prev := cfg.template
		cfg.template = name
		return Template(prev)
	}
}

// TypeRules adds rules for element and attribute types that the
// built-in table does not cover. The option is additive.
func TypeRules(rules ...xsdmap.TypeRule) Option {
	return func(cfg *Config) Option {
		prev := cfg.typeRules
		cfg.typeRules = append(append([]xsdmap.TypeRule(nil), prev...), rules...)
		return replaceTypeRules(prev)
	}
}

func replaceTypeRules(rules []xsdmap.TypeRule) Option {
	return func(cfg *Config) Option {
		prev := cfg.typeRules
		cfg.typeRules = rules
		return replaceTypeRules(prev)
	}
}
