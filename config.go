package main

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"

	"github.com/safestride/routing/router"
)

type Config struct {
	Listen  string `mapstructure:"listen"`
	Pprof   string `mapstructure:"pprof"`
	Offline bool   `mapstructure:"offline"`
	Seed    int64  `mapstructure:"seed"`

	Log        LogConfig        `mapstructure:"log"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Network    NetworkConfig    `mapstructure:"network"`
	Snapshot   SnapshotConfig   `mapstructure:"snapshot"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Geocoder   GeocoderConfig   `mapstructure:"geocoder"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Queue      QueueConfig      `mapstructure:"queue"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MongoConfig struct {
	URI string `mapstructure:"uri"`
	// {fspath} or {db}.{col}
	Crimes string `mapstructure:"crimes"`
	// {db}.{col}
	Incidents string `mapstructure:"incidents"`
}

type NetworkConfig struct {
	// osmnx GeoJSON export
	Path  string `mapstructure:"path"`
	Place string `mapstructure:"place"`
}

type SnapshotConfig struct {
	// empty disables snapshots
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type GeocoderConfig struct {
	BaseURL   string   `mapstructure:"base_url"`
	RPS       float64  `mapstructure:"rps"`
	UserAgent string   `mapstructure:"user_agent"`
	Countries []string `mapstructure:"countries"`
}

type AnthropicConfig struct {
	Key   string  `mapstructure:"key"`
	Model string  `mapstructure:"model"`
	RPS   float64 `mapstructure:"rps"`
}

type ClassifierConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

type QueueConfig struct {
	Size int `mapstructure:"size"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "localhost:52101")
	v.SetDefault("pprof", "localhost:52102")
	v.SetDefault("offline", false)
	v.SetDefault("seed", router.DEFAULT_SEED)
	v.SetDefault("log.level", "info")
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.crimes", "safesteps.crimes")
	v.SetDefault("mongo.incidents", "safesteps.incidents")
	v.SetDefault("network.path", "data/oakland.geojson")
	v.SetDefault("network.place", "Oakland, California, USA")
	v.SetDefault("snapshot.path", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "168h")
	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.rps", 1.0)
	v.SetDefault("geocoder.user_agent", "nav_app")
	v.SetDefault("geocoder.countries", []string{})
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.rps", 2.0)
	v.SetDefault("classifier.timeout", "10s")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject", "saferoute.incident.applied")
	v.SetDefault("queue.size", router.DEFAULT_QUEUE_SIZE)
}

// LoadConfig reads .env, then an optional YAML file, then SAFEROUTE_*
// environment variables, in increasing precedence. Flags bound on v win
// over all of them.
func LoadConfig(v *viper.Viper, file string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %v", err)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SAFEROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if _, ok := LOG_LEVELS[cfg.Log.Level]; !ok {
		return nil, eris.Errorf("config: invalid log level: %s", cfg.Log.Level)
	}
	return &cfg, nil
}
