package config

import (
	_ "embed"
	"homework-show/biz/infrastructure/util/log"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64
}

type AWSConf struct {
	Region      string
	Bucket      string
	DynamoTable string
	SESSender   string
}

type MediaConf struct {
	FFmpegBin         string `json:",default=ffmpeg"`
	TranscodeTimeoutS int64  `json:",default=300"`
	PosterTimeoutS    int64  `json:",default=60"`
	MaxImageWidth     int    `json:",default=1920"`
}

type UploadConf struct {
	MaxFiles      int   `json:",default=30"`
	MaxTotalBytes int64 `json:",default=1181116006"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache  cache.CacheConf
	Redis  *redis.RedisConf
	AWS    AWSConf
	Media  MediaConf
	Upload UploadConf
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
