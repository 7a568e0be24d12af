package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Saúde", "saude"},
		{"saude", "saude"},
		{"SAÚDE", "saude"},
		{"  Educação  ", "educacao"},
		{"Ação Contra a Mudança", "acao contra a mudanca"},
		{"São Paulo", "sao paulo"},
		{"", ""},
		{"   ", ""},
		{"plain ascii", "plain ascii"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Text(tt.input)
			if got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestText_MatchingLaw(t *testing.T) {
	// Equality of folded forms is the matching law.
	if Text("Saúde") != Text("saude") || Text("saude") != Text("SAÚDE") {
		t.Errorf("folded forms differ: %q %q %q", Text("Saúde"), Text("saude"), Text("SAÚDE"))
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := Name("  Maria Silva  "); got != "Maria Silva" {
		t.Errorf("Name: got %q", got)
	}
	if got := Name("UPPER"); got != "UPPER" {
		t.Errorf("Name preserves case: got %q", got)
	}
}

func TestStatus(t *testing.T) {
	if got := Status("  ATIVA "); got != "ativa" {
		t.Errorf("Status: got %q", got)
	}
}
