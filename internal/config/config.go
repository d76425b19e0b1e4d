package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"shorturl-service/internal/shortcode"
)

// 主配置结构
type Config struct {
	App       App       `yaml:"app"`
	Server    Server    `yaml:"server"`
	ShortCode ShortCode `yaml:"short_code"`
	Log       Log       `yaml:"log"`
}

// 应用配置
type App struct {
	Name    string `yaml:"name"`
	Mode    string `yaml:"mode"`
	Version string `yaml:"version"`
}

// 服务器配置
type Server struct {
	Port         int `yaml:"port"`
	ReadTimeout  int `yaml:"read_timeout"`
	WriteTimeout int `yaml:"write_timeout"`
}

// 短码配置
type ShortCode struct {
	Length int `yaml:"length"`
}

// 日志配置
type Log struct {
	Filename   string `yaml:"filename"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default 返回不依赖配置文件的默认配置
func Default() *Config {
	return &Config{
		App:       App{Name: "shorturl-service", Mode: "development", Version: "1.0.0"},
		Server:    Server{Port: 8080, ReadTimeout: 10, WriteTimeout: 10},
		ShortCode: ShortCode{Length: shortcode.DefaultLength},
		Log:       Log{Filename: "./logs/app.log", MaxSizeMB: 10, MaxBackups: 5, MaxAgeDays: 30},
	}
}

// Load 从 YAML 文件加载配置，文件中省略的字段保留默认值
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
