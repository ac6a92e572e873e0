package handlers

import (
	"context"

	"github.com/artem-streltsov/esmeralde-bot/resolver"
	"github.com/artem-streltsov/esmeralde-bot/timetable"
)

// Edt returns the timetable link of the group named by args, or by the
// member's roles when args is empty. A group missing from the table is not
// an error and gets UnknownGroupReply.
func (h *Handler) Edt(ctx context.Context, args []string, roles resolver.RoleSource) (string, error) {
	key, err := resolver.Resolve(ctx, args, roles)
	if err != nil {
		return "", err
	}

	id, ok := h.groups.Lookup(key)
	if !ok {
		return UnknownGroupReply, nil
	}
	return timetable.Link(id, h.now()), nil
}
