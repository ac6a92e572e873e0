package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var ErrCredentialMissing = errors.New("token not provided: use --token or set DISCORD_TOKEN")

type Options struct {
	Token         string
	TelegramToken string
	GroupsFile    string
}

type Config struct {
	DiscordToken     string
	TelegramBotToken string
	GroupsFile       string
}

// Load fills the tokens left empty on the command line from the environment
// (and a .env file if there is one). Only the Discord token is required.
func Load(opts Options) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	config := &Config{
		DiscordToken:     firstNonEmpty(opts.Token, os.Getenv("DISCORD_TOKEN")),
		TelegramBotToken: firstNonEmpty(opts.TelegramToken, os.Getenv("TELEGRAM_BOT_TOKEN")),
		GroupsFile:       opts.GroupsFile,
	}

	if config.DiscordToken == "" {
		return nil, ErrCredentialMissing
	}

	if config.GroupsFile == "" {
		return nil, errors.New("groups config file not provided")
	}

	return config, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
