package config

// LogLevel names a log/slog level.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level labsite configuration, corresponding to .labsite.yml.
type Config struct {
	ContentDir string         `yaml:"content_dir" koanf:"content_dir"`
	ContentURL string         `yaml:"content_url,omitempty" koanf:"content_url"`
	OutputDir  string         `yaml:"output_dir" koanf:"output_dir"`
	Assets     AssetsConfig   `yaml:"assets" koanf:"assets"`
	Carousel   CarouselConfig `yaml:"carousel" koanf:"carousel"`
	NewsLimit  int            `yaml:"news_limit" koanf:"news_limit"`
	Server     ServerConfig   `yaml:"server" koanf:"server"`
	LogLevel   LogLevel       `yaml:"log_level" koanf:"log_level"`
}

// AssetsConfig selects the static files copied from {content_dir}/assets.
type AssetsConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// CarouselConfig tunes the hero carousel.
type CarouselConfig struct {
	Interval       string  `yaml:"interval" koanf:"interval"`
	SwipeThreshold float64 `yaml:"swipe_threshold" koanf:"swipe_threshold"`
}

// ServerConfig holds `labsite serve` settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool `yaml:"watch" koanf:"watch"`
}
