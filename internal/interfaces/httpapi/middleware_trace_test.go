package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: " /HEALTHZ ", want: false},
		{path: "/readyz", want: false},
		{path: "/v1/session", want: true},
		{path: "/v1/session/reload", want: true},
		{path: "/v1/session/lineup/players/Ava%20Martinez/position", want: true},
		{path: "/v1/session/rotation/innings/3/positions/SS", want: true},
		{path: "/v1/session/rotation/innings/last", want: true},
		{path: "/v1/session/rotation/paste", want: true},
		{path: "/v1/session/pitching", want: true},
	}

	for _, tt := range tests {
		if got := shouldTraceRequest(tt.path); got != tt.want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
