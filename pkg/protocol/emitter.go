package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// Wait is the no-op command.
const Wait = "WAIT"

// Separator joins the commands of one turn.
const Separator = ";"

// CommandType is the verb of an output command.
type CommandType int

const (
	CommandWait CommandType = iota
	CommandLine
	CommandBeacon
	CommandMessage
)

// Command is one action in the output line.
type Command struct {
	Type     CommandType
	Source   hive.CellID // LINE only
	Target   hive.CellID // LINE and BEACON
	Strength int         // LINE and BEACON
	Text     string      // MESSAGE only
}

// Line returns a LINE command from source to target.
func Line(source, target hive.CellID, strength int) Command {
	return Command{Type: CommandLine, Source: source, Target: target, Strength: strength}
}

// Beacon returns a BEACON command on a single cell.
func Beacon(cell hive.CellID, strength int) Command {
	return Command{Type: CommandBeacon, Target: cell, Strength: strength}
}

// Message returns a MESSAGE command. Line breaks and separators in text are
// replaced so the command cannot split the output line.
func Message(text string) Command {
	r := strings.NewReplacer("\n", " ", "\r", " ", Separator, ",")
	return Command{Type: CommandMessage, Text: strings.TrimSpace(r.Replace(text))}
}

func (c Command) String() string {
	switch c.Type {
	case CommandLine:
		return fmt.Sprintf("LINE %d %d %d", c.Source, c.Target, strength(c.Strength))
	case CommandBeacon:
		return fmt.Sprintf("BEACON %d %d", c.Target, strength(c.Strength))
	case CommandMessage:
		return "MESSAGE " + c.Text
	default:
		return Wait
	}
}

// actionable reports whether the command moves ants.
func (c Command) actionable() bool {
	return c.Type == CommandLine || c.Type == CommandBeacon
}

// strength clamps non-positive weights to 1 so every emitted command is
// valid.
func strength(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

// FormatTurn renders the commands of one turn as a single line without the
// trailing newline. When no command moves ants the line starts with WAIT.
// Empty MESSAGE commands are dropped.
func FormatTurn(cmds []Command) string {
	parts := make([]string, 0, len(cmds)+1)
	hasAction := false
	for _, c := range cmds {
		if c.actionable() {
			hasAction = true
			break
		}
	}
	if !hasAction {
		parts = append(parts, Wait)
	}
	for _, c := range cmds {
		switch {
		case c.Type == CommandWait:
			continue
		case c.Type == CommandMessage && c.Text == "":
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, Separator)
}

// Emit writes one turn's commands followed by a newline.
func Emit(w io.Writer, cmds []Command) error {
	_, err := io.WriteString(w, FormatTurn(cmds)+"\n")
	return err
}
