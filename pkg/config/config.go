package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string `mapstructure:"PORT"`
	ServiceName string `mapstructure:"SERVICE_NAME"`
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

func bindEnvVariables() {
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("SERVICE_NAME")
	_ = viper.BindEnv("RABBITMQ_URL")
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SERVICE_NAME", "catalog")
}
