package domain

import "fmt"

// Command selects what a run does with the localization file.
type Command int

const (
	CommandUnknown Command = iota
	CommandGenerate
	CommandValidate
	CommandExport
)

var commandNames = map[Command]string{
	CommandGenerate: "generate",
	CommandValidate: "validate",
	CommandExport:   "export",
}

// Commands lists the recognised commands in the order they are documented.
func Commands() []Command {
	return []Command{CommandGenerate, CommandValidate, CommandExport}
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand maps a command-line word to a Command. Anything unrecognised
// yields CommandUnknown together with ErrUnknownCommand.
func ParseCommand(s string) (Command, error) {
	for _, c := range Commands() {
		if commandNames[c] == s {
			return c, nil
		}
	}
	return CommandUnknown, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}
