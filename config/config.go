package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/broker"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/database"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/filestore"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/grpcserver"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/minio"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

const (
	DriverFile  = "file"
	DriverMinIO = "minio"
	DriverMongo = "mongo"

	defaultAddress   = ":3000"
	defaultBodyLimit = "1M"
	defaultRateLimit = 20
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	Storage         StorageConfig          `yaml:"storage"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	GRPCServer      grpcserver.Config      `yaml:"grpc_server"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPConfig struct {
	Address    string  `yaml:"address"`
	StaticDir  string  `yaml:"static_dir"`
	UploadsDir string  `yaml:"uploads_dir"`
	BodyLimit  string  `yaml:"body_limit"`
	RateLimit  float64 `yaml:"rate_limit_per_second"`
}

type StorageConfig struct {
	Driver string            `yaml:"driver"`
	File   filestore.Config  `yaml:"file"`
	MinIO  minio.StoreConfig `yaml:"minio"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	setFromEnv(&config.MinIOClient.AccessKey, "MINIO_ROOT_USER")
	setFromEnv(&config.MinIOClient.SecretKey, "MINIO_ROOT_PASSWORD")
	setFromEnv(&config.DBConfig.URI, "DATABASE_URI")
	setFromEnv(&config.BrokerConfig.URI, "BROKER_URI")
	setFromEnv(&config.Storage.File.Path, "DATA_FILE")

	config.applyDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = defaultAddress
	}

	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = defaultBodyLimit
	}

	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = defaultRateLimit
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverFile
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.File.Path == "" {
			return errors.New("storage.file.path is required for the file driver")
		}

	case DriverMinIO:
		if c.MinIOClient.Endpoint == "" || c.Storage.MinIO.Bucket == "" {
			return errors.New("minio_client.endpoint and storage.minio.bucket are required for the minio driver")
		}

	case DriverMongo:
		if c.DBConfig.URI == "" || c.DBConfig.DBName == "" {
			return errors.New("DATABASE_URI and db_config.db_name are required for the mongo driver")
		}

	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.BrokerConfig.Enabled && (c.BrokerConfig.URI == "" || c.BrokerConfig.StreamName == "") {
		return errors.New("BROKER_URI and redis_broker_config.stream_name are required when the broker is enabled")
	}

	if c.GRPCServer.Enabled && c.GRPCServer.Port == 0 {
		return errors.New("grpc_server.port is required when the grpc server is enabled")
	}

	return nil
}
