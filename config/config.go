package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Bun        BunConfig
	Chat       Chat
	Realtime   Realtime
	LoggerMode LoggerMode
}

type BunConfig struct {
	DSN string
}

type Chat struct {
	MessagesPageSize      int
	ConversationsPageSize int
}

type Realtime struct {
	SubscriptionBuffer int
	DedupeWindow       int
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	applyDefaults(&c)
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Chat.MessagesPageSize <= 0 {
		c.Chat.MessagesPageSize = 50
	}
	if c.Chat.ConversationsPageSize <= 0 {
		c.Chat.ConversationsPageSize = 20
	}
	if c.Realtime.SubscriptionBuffer <= 0 {
		c.Realtime.SubscriptionBuffer = 64
	}
	if c.Realtime.DedupeWindow <= 0 {
		c.Realtime.DedupeWindow = 1024
	}
}
