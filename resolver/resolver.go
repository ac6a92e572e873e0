// Package resolver turns command arguments or a member's role names into a
// group key for the groups table.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/artem-streltsov/esmeralde-bot/utils"
)

var ErrRoleLookupFailed = errors.New("role lookup failed")

// BareTPKey is what a lone "tp" argument resolves to. It never matches a
// group and ends up as the unknown group reply; kept as is for compatibility.
const BareTPKey = "wtf"

var rolePattern = regexp.MustCompile(`(tp)?[-_ ]*[0-9][a-z]`)

var roleSeparators = []rune{' ', '_', '-'}

// RoleSource lists the role names of the member who invoked the command.
type RoleSource interface {
	RoleNames(ctx context.Context) ([]string, error)
}

// Resolve uses the arguments when there are any and falls back to the roles otherwise.
func Resolve(ctx context.Context, args []string, roles RoleSource) (string, error) {
	if len(args) > 0 {
		return FromArgs(args), nil
	}
	if roles == nil {
		return "", fmt.Errorf("%w: no member information", ErrRoleLookupFailed)
	}

	names, err := roles.RoleNames(ctx)
	if err != nil {
		if errors.Is(err, ErrRoleLookupFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrRoleLookupFailed, err)
	}
	return FromRoles(names)
}

func FromArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}

	first := strings.ToLower(args[0])
	switch {
	case first == "tp":
		if len(args) > 1 {
			return "TP" + args[1]
		}
		return BareTPKey
	case strings.Contains(first, "tp"):
		return first
	default:
		return "TP" + first
	}
}

// FromRoles scans every role and keeps the last one that looks like a group.
func FromRoles(roles []string) (string, error) {
	key := ""
	for _, role := range roles {
		name := strings.ToLower(role)
		if !rolePattern.MatchString(name) {
			continue
		}

		name = utils.RemoveChars(name, roleSeparators...)
		if strings.Contains(name, "tp") {
			key = name
		} else {
			key = "tp" + name
		}
	}

	if key == "" {
		return "", fmt.Errorf("%w: no group role among %d roles", ErrRoleLookupFailed, len(roles))
	}
	return key, nil
}
