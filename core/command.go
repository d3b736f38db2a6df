package core

import (
	"errors"
	"strings"
)

// CommandKind discriminates the parsed command variants.
type CommandKind uint8

const (
	// CmdSetSteps sets the commanded step count for one axis (A1/A2/A3).
	CmdSetSteps CommandKind = iota
	// CmdStart commits the commanded steps as a move (GO).
	CmdStart
	// CmdReport reports the commanded step counts (?).
	CmdReport
)

// Command is a parsed command line. Axis and Steps are meaningful only
// for CmdSetSteps.
type Command struct {
	Kind  CommandKind
	Axis  int
	Steps int32
}

// ErrUnknownCommand reports a first token outside the command vocabulary.
var ErrUnknownCommand = errors.New("unrecognized command")

// ParseCommand classifies the first token of a line against the command
// vocabulary {A1, A2, A3, GO, ?}, case-insensitively. Set-steps commands
// take their signed count from the second token; a missing or malformed
// count parses as zero, matching the tolerant serial protocol.
func ParseCommand(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, ErrUnknownCommand
	}

	keyword := tokens[0]
	switch {
	case strings.EqualFold(keyword, "A1"):
		return Command{Kind: CmdSetSteps, Axis: 0, Steps: stepsArg(tokens)}, nil
	case strings.EqualFold(keyword, "A2"):
		return Command{Kind: CmdSetSteps, Axis: 1, Steps: stepsArg(tokens)}, nil
	case strings.EqualFold(keyword, "A3"):
		return Command{Kind: CmdSetSteps, Axis: 2, Steps: stepsArg(tokens)}, nil
	case strings.EqualFold(keyword, "GO"):
		return Command{Kind: CmdStart}, nil
	case keyword == "?":
		return Command{Kind: CmdReport}, nil
	}

	return Command{}, ErrUnknownCommand
}

func stepsArg(tokens []string) int32 {
	if len(tokens) < 2 {
		return 0
	}
	return parseSteps(tokens[1])
}

// parseSteps parses a signed integer from the leading characters of s.
// Parsing stops at the first non-digit; no digits means zero. There is
// no bounds checking on the magnitude.
func parseSteps(s string) int32 {
	pos := 0
	negative := false
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		negative = s[pos] == '-'
		pos++
	}

	var value int32
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		value = value*10 + int32(s[pos]-'0')
		pos++
	}

	if negative {
		value = -value
	}
	return value
}
