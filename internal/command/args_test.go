package command

import "testing"

func TestScanFlagValue(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantValue string
		wantFound bool
	}{
		{name: "absent", args: []string{"list"}},
		{name: "separate value", args: []string{"--name", "counter"}, wantValue: "counter", wantFound: true},
		{name: "equals form", args: []string{"--name=input-proof"}, wantValue: "input-proof", wantFound: true},
		{name: "first wins", args: []string{"--name", "a", "--name", "b"}, wantValue: "a", wantFound: true},
		{name: "first wins across forms", args: []string{"--name=a", "--name", "b"}, wantValue: "a", wantFound: true},
		{name: "missing value", args: []string{"-v", "--name"}, wantFound: true},
		{name: "after terminator", args: []string{"--", "--name", "a"}},
		{name: "similar flag", args: []string{"--names", "a"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, found := scanFlagValue(tc.args, "--name")
			if value != tc.wantValue || found != tc.wantFound {
				t.Fatalf("scanFlagValue(%q) = %q, %v; want %q, %v", tc.args, value, found, tc.wantValue, tc.wantFound)
			}
		})
	}
}
