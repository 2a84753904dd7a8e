package password

import (
	"testing"
)

func TestValidate_RuleOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "short", MsgTooShort},
		{"short and no uppercase reports length first", "ab1", MsgTooShort},
		{"no uppercase", "nouppercase123", MsgNoUppercase},
		{"no number", "NoNumbers", MsgNoNumber},
		{"empty", "", MsgTooShort},
		{"uppercase checked before number", "lowercase", MsgNoUppercase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.password)
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want %q", tt.password, tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("Validate(%q) = %q, want %q", tt.password, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidate_Accepted(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"Admin123", "User123", "aB3cdef", "PASSWORD1"} {
		if err := Validate(pw); err != nil {
			t.Fatalf("Validate(%q) = %v, want nil", pw, err)
		}
	}
}
