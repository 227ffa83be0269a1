package configs

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

type configs struct {
	Service  ServiceConfig  `yaml:"service"`
	Postgres PostgresConfig `yaml:"postgres"`
	S3       S3Config       `yaml:"s3"`
	Game     GameConfig     `yaml:"game"`
	Logs     LogsConfig     `yaml:"logs"`
	Secrets  Secrets        `yaml:"secrets"`
}

var Configs configs

func Init(ConfigPath *string) {
	var configPath string
	if ConfigPath == nil || *ConfigPath == "" {
		_, b, _, _ := runtime.Caller(0)
		BasePath := filepath.Dir(b)
		configPath = BasePath + "/file/configs.yaml"
	} else {
		configPath = *ConfigPath
	}
	load(configPath)

	InitLogger()
}

// load reads the YAML config file. The process cannot run with a broken
// config, so any failure here is fatal.
func load(ConfigsPath string) {
	yamlFile, err := os.ReadFile(ConfigsPath)
	if err != nil {
		panic("Failed to read config file: " + err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Configs)
	if err != nil {
		panic("Failed to parse config file: " + err.Error())
	}
}
