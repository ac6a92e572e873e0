package common

import "github.com/bwmarrin/discordgo"

// Session is the part of a Discord session the message handler needs.
type Session interface {
	ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error)
	Role(guildID, roleID string) (*discordgo.Role, error)
}

type SessionWrapper struct {
	session *discordgo.Session
}

func NewSessionWrapper(s *discordgo.Session) *SessionWrapper {
	return &SessionWrapper{session: s}
}

func (w *SessionWrapper) ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error) {
	return w.session.ChannelMessageSendReply(channelID, content, reference)
}

// Role only reads the state cache, it never calls the API.
func (w *SessionWrapper) Role(guildID, roleID string) (*discordgo.Role, error) {
	return w.session.State.Role(guildID, roleID)
}
