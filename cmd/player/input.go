package main

import (
	"fmt"
	"strings"
)

type action int

const (
	actionPress action = iota
	actionRelease
	actionStrike
	actionWho
	actionRoster
	actionQuit
	actionHelp
)

type command struct {
	action action
	note   string
}

const usage = `+C4 press, -C4 release, C4 press and release
/who participants, /roster instruments, /quit leave`

// parseCommand reads one line typed by the player. Blank lines yield ok=false.
func parseCommand(line string) (cmd command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{}, false, nil
	}
	if strings.HasPrefix(line, "/") {
		switch strings.ToLower(line) {
		case "/who":
			return command{action: actionWho}, true, nil
		case "/roster":
			return command{action: actionRoster}, true, nil
		case "/quit", "/exit":
			return command{action: actionQuit}, true, nil
		case "/help":
			return command{action: actionHelp}, true, nil
		}
		return command{}, false, fmt.Errorf("unknown command %q", line)
	}

	act := actionStrike
	switch line[0] {
	case '+':
		act, line = actionPress, line[1:]
	case '-':
		act, line = actionRelease, line[1:]
	}
	note := strings.TrimSpace(line)
	if note == "" || strings.ContainsAny(note, " \t") {
		return command{}, false, fmt.Errorf("invalid note %q", line)
	}
	return command{action: act, note: strings.ToUpper(note)}, true, nil
}
