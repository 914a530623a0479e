package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	Translate  TranslateConfig  `yaml:"translate"`
	TTS        TTSConfig        `yaml:"tts"`
	Audio      AudioConfig      `yaml:"audio"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Paths      PathsConfig      `yaml:"paths"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type TranslateConfig struct {
	Provider    string `yaml:"provider"`
	SourceLang  string `yaml:"source_lang"`
	TargetLang  string `yaml:"target_lang"`
	ChunkSize   int    `yaml:"chunk_size"`
	DeepLURL    string `yaml:"deepl_url"`
	GeminiModel string `yaml:"gemini_model"`
}

type TTSConfig struct {
	ServerURL string `yaml:"server_url"`
	Speaker   string `yaml:"speaker"`
	Language  string `yaml:"language"`
	PauseMs   int    `yaml:"pause_ms"`
}

type AudioConfig struct {
	Bitrate string `yaml:"bitrate"`
}

type TranscriptConfig struct {
	Format string `yaml:"format"`
}

type PathsConfig struct {
	Work   string `yaml:"work"`
	Inbox  string `yaml:"inbox"`
	Outbox string `yaml:"outbox"`
}

type TelegramConfig struct {
	PollTimeout int `yaml:"poll_timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Credentials are read from the environment, never from the config file.
type Credentials struct {
	TelegramToken string
	DeepLKey      string
	GeminiKeys    []string
}

// Load reads and validates the YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.TTS.ServerURL == "" {
		return fmt.Errorf("tts.server_url is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Translate.Provider == "" {
		c.Translate.Provider = "deepl"
	}
	if c.Translate.Provider != "deepl" && c.Translate.Provider != "gemini" {
		return fmt.Errorf("translate.provider must be deepl or gemini, got %q", c.Translate.Provider)
	}
	if c.Translate.SourceLang == "" {
		c.Translate.SourceLang = "en"
	}
	if c.Translate.TargetLang == "" {
		c.Translate.TargetLang = "ar"
	}
	if c.Translate.ChunkSize == 0 {
		c.Translate.ChunkSize = 10000
	}
	if c.Translate.DeepLURL == "" {
		c.Translate.DeepLURL = "https://api-free.deepl.com"
	}
	if c.Translate.GeminiModel == "" {
		c.Translate.GeminiModel = "gemini-2.5-flash"
	}
	if c.TTS.Speaker == "" {
		c.TTS.Speaker = "Ana Florence"
	}
	if c.TTS.Language == "" {
		c.TTS.Language = "ar"
	}
	if c.TTS.PauseMs == 0 {
		c.TTS.PauseMs = 400
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = "192k"
	}
	if c.Transcript.Format == "" {
		c.Transcript.Format = "txt"
	}
	if c.Transcript.Format != "txt" && c.Transcript.Format != "docx" {
		return fmt.Errorf("transcript.format must be txt or docx, got %q", c.Transcript.Format)
	}
	if c.Paths.Work == "" {
		c.Paths.Work = "data/work"
	}
	if c.Paths.Inbox != "" && c.Paths.Outbox == "" {
		c.Paths.Outbox = "data/outbox"
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 60
	}

	return nil
}

// LoadCredentials pulls the required API credentials from the environment.
// Missing bot token or translation key is a fatal startup condition.
func LoadCredentials() (*Credentials, error) {
	creds := &Credentials{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DeepLKey:      os.Getenv("DEEPL_API_KEY"),
	}

	if creds.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN must be set")
	}
	if creds.DeepLKey == "" {
		return nil, fmt.Errorf("DEEPL_API_KEY must be set")
	}

	for _, k := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			creds.GeminiKeys = append(creds.GeminiKeys, k)
		}
	}

	return creds, nil
}
