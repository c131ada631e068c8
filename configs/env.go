package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"go-weather/pkg/log"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	PropertiesPath  string
}

var Env = &EnvConfig{}

// Load reads a .env file when present, then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) *EnvConfig {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Fail to load env file: %v", err)
	}

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "go-weather"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/api"),
		PropertiesPath:  getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
	}
	log.SetLevel(viper.GetString("LOG_LEVEL"))
	return Env
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
