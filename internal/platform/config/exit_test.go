package config_test

import (
	"strings"
	"testing"

	"github.com/louisbranch/javabite/internal/platform/config"
)

func TestExitfWritesLineAndExitsOne(t *testing.T) {
	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{format: "parse flags: %v", args: []any{"bad -poll-interval"}, want: "parse flags: bad -poll-interval\n"},
		{format: "no api url", want: "no api url\n"},
	}
	for _, tc := range tests {
		var buf strings.Builder
		code := -1
		restore := config.SetExitHooksForTest(&buf, func(c int) { code = c })
		config.Exitf(tc.format, tc.args...)
		restore()
		if code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}
		if buf.String() != tc.want {
			t.Fatalf("stderr = %q, want %q", buf.String(), tc.want)
		}
	}
}
