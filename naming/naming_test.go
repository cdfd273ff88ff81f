package naming

import "testing"

func TestPolicies(t *testing.T) {
	tests := []struct {
		p    Policy
		in   string
		want string
	}{
		{Identity, "remote_host", "remote_host"},
		{Camel, "remote_host", "RemoteHost"},
		{LowerCamel, "remote_host", "remoteHost"},
		{LowerCamel, "RemoteHost", "remoteHost"},
		{Snake, "RemoteHost", "remote_host"},
		{ScreamingSnake, "remoteHost", "REMOTE_HOST"},
		{Kebab, "RemoteHost", "remote-host"},
	}
	for _, tt := range tests {
		if got := tt.p(tt.in); got != tt.want {
			t.Errorf("%q -> %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, name := range []string{
		"identity", "camel", "lower-camel", "camelCase", "snake",
		"snake_case", "screaming-snake", "kebab",
	} {
		if _, err := Parse(name); err != nil {
			t.Errorf("Parse(%q): %v", name, err)
		}
	}
	if _, err := Parse("quux"); err == nil {
		t.Errorf("Parse accepted unknown policy")
	}
}
