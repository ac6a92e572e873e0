package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artem-streltsov/esmeralde-bot/utils"
)

const Prefix = "/"

var Delimiters = []rune{' ', '-', '_'}

var ErrTooManyArgs = errors.New("too many arguments")

type Command struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	MaxArgs     int
}

var Commands = struct {
	Edt Command
}{
	Edt: Command{
		Name:        "edt",
		Aliases:     []string{"emploi", "agenda", "calendar"},
		Description: "Renvoie l'emploi du temps",
		Usage:       "/edt [tp] [groupe]",
		MaxArgs:     2,
	},
}

func GetAllCommands() []Command {
	return []Command{
		Commands.Edt,
	}
}

// Names returns the name followed by the aliases.
func (c Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

func GetCommandByName(name string) (Command, bool) {
	for _, cmd := range GetAllCommands() {
		for _, n := range cmd.Names() {
			if n == name {
				return cmd, true
			}
		}
	}
	return Command{}, false
}

type Invocation struct {
	Command Command
	Args    []string
}

func (i Invocation) Validate() error {
	if len(i.Args) > i.Command.MaxArgs {
		return fmt.Errorf("%w: %s takes at most %d, got %d", ErrTooManyArgs, i.Command.Name, i.Command.MaxArgs, len(i.Args))
	}
	return nil
}

// Parse recognises "/<name> arg arg" where name is a command or one of its
// aliases. Arguments are split on any delimiter, so "/edt tp-1a" gives [tp 1a].
func Parse(content string) (Invocation, bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, Prefix) {
		return Invocation{}, false
	}
	rest := strings.TrimPrefix(content, Prefix)

	end := strings.IndexFunc(rest, isDelimiter)
	name, args := rest, ""
	if end >= 0 {
		name, args = rest[:end], rest[end:]
	}

	cmd, ok := GetCommandByName(name)
	if !ok {
		return Invocation{}, false
	}
	return Invocation{Command: cmd, Args: utils.SplitAny(args, Delimiters...)}, true
}

func isDelimiter(r rune) bool {
	for _, d := range Delimiters {
		if r == d {
			return true
		}
	}
	return false
}
