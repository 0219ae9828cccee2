package term

import (
	"errors"
	"strconv"
	"strings"
)

// actionKind identifies a parsed player command.
type actionKind int

const (
	actionDig actionKind = iota
	actionFlag
	actionQuit
)

// command is one parsed move. Row and column are 1-based, exactly as
// the player typed them; the loop converts to 0-based before calling
// the core.
type command struct {
	kind actionKind
	row  int
	col  int
}

var (
	errBadAction = errors.New("Action not recognized. Try again!")
	errBadCoords = errors.New("Coordinate seems incorrect. Try again!")
)

// parseCommand parses a move line: "D <row> <col>" digs, "F <row> <col>"
// flags, "Q" quits. Actions are case-insensitive.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)

	if len(fields) == 1 {
		switch strings.ToUpper(fields[0]) {
		case "Q", "QUIT":
			return command{kind: actionQuit}, nil
		}
	}
	if len(fields) != 3 {
		return command{}, errBadCoords
	}

	var cmd command
	switch strings.ToUpper(fields[0]) {
	case "D", "DIG":
		cmd.kind = actionDig
	case "F", "FLAG":
		cmd.kind = actionFlag
	default:
		return command{}, errBadAction
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, errBadCoords
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return command{}, errBadCoords
	}

	cmd.row, cmd.col = row, col
	return cmd, nil
}
