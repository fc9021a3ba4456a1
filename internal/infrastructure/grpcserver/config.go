package grpcserver

type Config struct {
	Enabled bool   `yaml:"enabled"`
	Bind    string `yaml:"bind"`
	Port    uint16 `yaml:"port"`
}
