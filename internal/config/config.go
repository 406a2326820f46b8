package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	FilePath         string
	UseStdin         bool
	Follow           bool
	MaxEntries       int
	Theme            Theme
	Connectors       string // strict|all
	Offline          bool
	OpenAIModel      string
	OpenAIBase       string
	OpenAITimeoutSec int
	ExportFormat     string // csv|json|groups
	ExportOut        string
	ShowVersion      bool

	// Internal
	IsPipedStdin bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Detect if stdin is piped
	fi, _ := os.Stdin.Stat()
	cfg.IsPipedStdin = (fi.Mode() & os.ModeCharDevice) == 0

	fs := flag.NewFlagSet("jseq", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.FilePath, "file", "", "path to a journal text file (snippets separated by blank lines)")
	fs.BoolVar(&cfg.Follow, "follow", false, "follow the file (tail -f)")
	fs.BoolVar(&cfg.UseStdin, "stdin", false, "read snippets from stdin (default: auto if piped)")
	fs.IntVar(&cfg.MaxEntries, "max-entries", 10000, "entry collection cap (oldest evicted beyond it)")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", string(ThemeDark), "theme: dark|light")
	fs.StringVar(&cfg.Connectors, "connectors", "strict", "connector policy: strict (adjacent ranks only) | all (every sorted pair)")
	fs.BoolVar(&cfg.Offline, "offline", false, "disable OpenAI explain")
	fs.StringVar(&cfg.OpenAIModel, "openai-model", getenvDefault("JSEQ_OPENAI_MODEL", "gpt-5-mini"), "OpenAI model override")
	fs.StringVar(&cfg.OpenAIBase, "openai-base-url", getenvDefault("JSEQ_OPENAI_BASE_URL", ""), "OpenAI base URL override")
	fs.IntVar(&cfg.OpenAITimeoutSec, "openai-timeout-sec", getenvDefaultInt("JSEQ_OPENAI_TIMEOUT_SEC", 60), "OpenAI request timeout in seconds")
	fs.StringVar(&cfg.ExportFormat, "export", "", "export on demand: csv|json|groups")
	fs.StringVar(&cfg.ExportOut, "out", "", "output path for export")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	if cfg.ExportFormat != "" && cfg.ExportOut == "" {
		return nil, errors.New("--export requires --out path")
	}
	switch cfg.Connectors {
	case "strict", "all":
	default:
		return nil, fmt.Errorf("unknown --connectors value %q", cfg.Connectors)
	}
	if cfg.Follow && cfg.FilePath == "" {
		return nil, errors.New("--follow requires --file")
	}

	// Determine input source defaults
	if cfg.UseStdin || (cfg.IsPipedStdin && cfg.FilePath == "") {
		cfg.UseStdin = true
	}

	if cfg.MaxEntries < 100 {
		cfg.MaxEntries = 100
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) OpenAIKey() string { return os.Getenv("OPENAI_API_KEY") }

func (c *Config) String() string {
	return fmt.Sprintf("file=%s stdin=%v follow=%v theme=%s connectors=%s offline=%v",
		c.FilePath, c.UseStdin, c.Follow, c.Theme, c.Connectors, c.Offline)
}
