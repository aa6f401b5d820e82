package cmd

import (
	"bytes"
	"testing"

	"github.com/dzjyyds666/strtable/parse"
	"github.com/stretchr/testify/require"
)

func TestUseColor(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")

	tests := []struct {
		name    string
		noColor bool
		tty     bool
		env     bool
		want    bool
	}{
		{name: "terminal", tty: true, want: true},
		{name: "not a terminal", tty: false, want: false},
		{name: "flag", noColor: true, tty: true, want: false},
		{name: "NO_COLOR", tty: true, env: true, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env {
				t.Setenv("NO_COLOR", "1")
			}
			require.Equal(t, tt.want, useColor(tt.noColor, tt.tty))
		})
	}

	t.Run("TERM=dumb", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		require.False(t, useColor(false, true))
	})
}

func TestDiagPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := newDiagPrinter(&buf, false, false)
	require.Nil(t, p.paint)

	p.report(&parse.Diagnostic{Reason: parse.BadLine, Source: "a.txt", Line: 3})
	require.Equal(t, "Line 3 of file \"a.txt\" is not correct, skipping it.\n", buf.String())

	quiet := newDiagPrinter(&buf, false, true)
	quiet.report(&parse.Diagnostic{Reason: parse.BadName, Source: "a.txt", Line: 4})
	require.Equal(t, 1, quiet.count)
	require.Equal(t, "Line 3 of file \"a.txt\" is not correct, skipping it.\n", buf.String())
}
