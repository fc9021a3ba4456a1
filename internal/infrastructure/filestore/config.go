package filestore

type Config struct {
	Path string `yaml:"path"`
}
