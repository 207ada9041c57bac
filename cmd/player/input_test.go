package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    command
		ok      bool
		wantErr bool
	}{
		{line: "", ok: false},
		{line: "   ", ok: false},
		{line: "+C4", want: command{action: actionPress, note: "C4"}, ok: true},
		{line: "-c4", want: command{action: actionRelease, note: "C4"}, ok: true},
		{line: " A#3 ", want: command{action: actionStrike, note: "A#3"}, ok: true},
		{line: "/who", want: command{action: actionWho}, ok: true},
		{line: "/ROSTER", want: command{action: actionRoster}, ok: true},
		{line: "/quit", want: command{action: actionQuit}, ok: true},
		{line: "/exit", want: command{action: actionQuit}, ok: true},
		{line: "/help", want: command{action: actionHelp}, ok: true},
		{line: "/dance", wantErr: true},
		{line: "+", wantErr: true},
		{line: "C4 D4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req := require.New(t)
			got, ok, err := parseCommand(tt.line)
			if tt.wantErr {
				req.Error(err)
				req.False(ok)
				return
			}
			req.NoError(err)
			req.Equal(tt.ok, ok)
			req.Equal(tt.want, got)
		})
	}
}
