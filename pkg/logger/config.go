package logger

const (
	TargetConsole = "console"
	TargetFile    = "file"
)

type Config struct {
	Path       string   `yaml:"path"`
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	MaxAge     int      `yaml:"max_age_in_days"`
	Compress   bool     `yaml:"compress"`
}
