package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/artem-streltsov/esmeralde-bot/bot"
	"github.com/artem-streltsov/esmeralde-bot/config"
	"github.com/artem-streltsov/esmeralde-bot/groups"
	"github.com/artem-streltsov/esmeralde-bot/handlers"
	"github.com/spf13/cobra"
)

var opts config.Options

var rootCmd = &cobra.Command{
	Use:   "esmeralde [flags] <groups_file>",
	Short: "Run Esmeralde Discord bot",
	Long: `Esmeralde answers /edt (or /emploi, /agenda, /calendar) with the link to a
group's timetable for the current week. groups_file is a JSON object mapping
group keys such as "TP1A" to the identifiers used by the timetable site.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.GroupsFile = args[0]
		return run(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&opts.Token, "token", "t", "", "Discord bot token (defaults to DISCORD_TOKEN)")
	rootCmd.Flags().StringVar(&opts.TelegramToken, "telegram-token", "", "Telegram bot token, also serves the command on Telegram (defaults to TELEGRAM_BOT_TOKEN)")
}

func run(parent context.Context) error {
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	table, err := groups.Load(cfg.GroupsFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d groups from %s", table.Len(), cfg.GroupsFile)

	handler := handlers.NewHandler(table)

	discord, err := bot.InitDiscord(cfg.DiscordToken, handler)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.TelegramBotToken != "" {
		telegram, err := bot.InitTelegram(cfg.TelegramBotToken, handler)
		if err != nil {
			return fmt.Errorf("failed to initialize telegram bot: %w", err)
		}
		go func() {
			if err := telegram.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Error running telegram bot: %v", err)
				cancel()
			}
		}()
	}

	log.Println("Starting the bot...")
	if err := discord.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	log.Println("Shutting down...")
	return nil
}
