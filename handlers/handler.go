package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/artem-streltsov/esmeralde-bot/commands"
	"github.com/artem-streltsov/esmeralde-bot/groups"
	"github.com/artem-streltsov/esmeralde-bot/resolver"
)

const (
	UnknownGroupReply = "Unknown group :("
	RoleFailureReply  = "I couldn't work out your group from your roles. Try /edt <groupe>, e.g. /edt 1a."
	FailureReply      = "Something went wrong, please try again later."
)

type Handler struct {
	groups *groups.Table
	now    func() time.Time
}

func NewHandler(table *groups.Table) *Handler {
	return &Handler{
		groups: table,
		now:    time.Now,
	}
}

// WithClock replaces time.Now, mostly for tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Reply answers a parsed invocation. Errors are logged and turned into a
// message for the user, so there is always something to send back.
func (h *Handler) Reply(ctx context.Context, inv commands.Invocation, roles resolver.RoleSource) string {
	if err := inv.Validate(); err != nil {
		log.Printf("Rejected /%s: %v", inv.Command.Name, err)
		return usage(inv.Command)
	}

	switch inv.Command.Name {
	case commands.Commands.Edt.Name:
		reply, err := h.Edt(ctx, inv.Args, roles)
		if err != nil {
			log.Printf("Error handling /%s %v: %v", inv.Command.Name, inv.Args, err)
			if errors.Is(err, resolver.ErrRoleLookupFailed) {
				return RoleFailureReply
			}
			return FailureReply
		}
		return reply
	default:
		return usage(inv.Command)
	}
}

func usage(cmd commands.Command) string {
	return fmt.Sprintf("Usage: %s", cmd.Usage)
}
