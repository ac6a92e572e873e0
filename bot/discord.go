package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/artem-streltsov/esmeralde-bot/commands"
	"github.com/artem-streltsov/esmeralde-bot/common"
	"github.com/artem-streltsov/esmeralde-bot/handlers"
	"github.com/artem-streltsov/esmeralde-bot/resolver"
	"github.com/bwmarrin/discordgo"
)

const discordIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

type Discord struct {
	session *discordgo.Session
	handler *handlers.Handler
}

func InitDiscord(token string, handler *handlers.Handler) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	session.Identify.Intents = discordIntents

	return &Discord{
		session: session,
		handler: handler,
	}, nil
}

// Run connects to the gateway and serves commands until ctx is done.
func (d *Discord) Run(ctx context.Context) error {
	d.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Bot %s is connected!", r.User.Username)
	})
	d.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		HandleMessage(ctx, common.NewSessionWrapper(s), d.handler, m)
	})

	if err := d.session.Open(); err != nil {
		return fmt.Errorf("error opening discord connection: %w", err)
	}
	log.Println("Discord bot is running...")

	<-ctx.Done()
	log.Println("Shutting down Discord bot...")
	if err := d.session.Close(); err != nil {
		log.Printf("Error closing discord session: %v", err)
	}
	return ctx.Err()
}

// HandleMessage answers a single message if it is one of our commands.
func HandleMessage(ctx context.Context, s common.Session, h *handlers.Handler, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	inv, ok := commands.Parse(m.Content)
	if !ok {
		return
	}

	roles := memberRoles{session: s, guildID: m.GuildID, member: m.Member}
	reply := h.Reply(ctx, inv, roles)
	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

type memberRoles struct {
	session common.Session
	guildID string
	member  *discordgo.Member
}

func (r memberRoles) RoleNames(ctx context.Context) ([]string, error) {
	if r.member == nil {
		return nil, fmt.Errorf("%w: member not found", resolver.ErrRoleLookupFailed)
	}

	names := make([]string, 0, len(r.member.Roles))
	for _, roleID := range r.member.Roles {
		role, err := r.session.Role(r.guildID, roleID)
		if err != nil {
			return nil, fmt.Errorf("%w: role %s: %w", resolver.ErrRoleLookupFailed, roleID, err)
		}
		names = append(names, role.Name)
	}
	return names, nil
}
