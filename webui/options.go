package webui

import (
	"github.com/Sain-Biswas/gemini-bot/core/types"
	"github.com/Sain-Biswas/gemini-bot/pkg/llm"
)

type Config struct {
	Client       llm.LLMClient
	Model        string
	SystemPrompt string
	AuthSecret   string
	ApiKeys      []string
	WeatherURL   string

	Chats        types.ChatStore
	Reservations types.ReservationStore
	Users        types.UserStore
	Usage        types.UsageStore
}

type Option func(*Config)

func WithClient(client llm.LLMClient) Option {
	return func(c *Config) {
		c.Client = client
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.Model = model
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(c *Config) {
		c.SystemPrompt = prompt
	}
}

func WithAuthSecret(secret string) Option {
	return func(c *Config) {
		c.AuthSecret = secret
	}
}

func WithApiKeys(keys ...string) Option {
	return func(c *Config) {
		c.ApiKeys = keys
	}
}

func WithWeatherURL(url string) Option {
	return func(c *Config) {
		c.WeatherURL = url
	}
}

func WithChatStore(chats types.ChatStore) Option {
	return func(c *Config) {
		c.Chats = chats
	}
}

func WithReservationStore(reservations types.ReservationStore) Option {
	return func(c *Config) {
		c.Reservations = reservations
	}
}

func WithUserStore(users types.UserStore) Option {
	return func(c *Config) {
		c.Users = users
	}
}

func WithUsageStore(usage types.UsageStore) Option {
	return func(c *Config) {
		c.Usage = usage
	}
}

func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func NewConfig(opts ...Option) *Config {
	c := &Config{}
	c.Apply(opts...)
	return c
}
