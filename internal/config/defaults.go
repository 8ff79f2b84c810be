package config

// DefaultExcludes are asset glob patterns never copied to the output.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/*.psd",
	"**/*.tmp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentDir: ".",
		OutputDir:  "public",
		Assets: AssetsConfig{
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
		Carousel: CarouselConfig{
			Interval:       "5s",
			SwipeThreshold: 40,
		},
		NewsLimit: 6,
		Server: ServerConfig{
			Port:  8080,
			Watch: true,
		},
		LogLevel: LogInfo,
	}
}
