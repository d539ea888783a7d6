package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr string `mapstructure:"server_addr"`

	MySQLDSN string `mapstructure:"mysql_dsn"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	PrivateKeyFile string `mapstructure:"private_key_file"`
	PublicKeyFile  string `mapstructure:"public_key_file"`

	MediaDir string `mapstructure:"media_dir"`
}

// Read loads the config file (if any) and applies PHOTOGRAM_* env overrides.
func Read(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_addr", ":8080")
	v.SetDefault("mysql_dsn", "root:love@tcp(localhost:3306)/photogram?charset=utf8&interpolateParams=true")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("private_key_file", "private.pem")
	v.SetDefault("public_key_file", "public.pem")
	v.SetDefault("media_dir", "media")

	v.SetConfigName("photogram")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("photogram")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
