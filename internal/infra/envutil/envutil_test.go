package envutil

import "testing"

func TestGetHostEnv(t *testing.T) {
	t.Setenv("FHEVM_EXAMPLE_OUTPUT_DIR", "  out  ")
	if got := GetHostEnv("OUTPUT_DIR"); got != "out" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestGetHostEnvBool(t *testing.T) {
	t.Setenv("FHEVM_EXAMPLE_ATOMIC", "")
	if _, set, err := GetHostEnvBool("ATOMIC"); set || err != nil {
		t.Fatalf("unset variable: set=%v err=%v", set, err)
	}

	t.Setenv("FHEVM_EXAMPLE_ATOMIC", "true")
	value, set, err := GetHostEnvBool("ATOMIC")
	if err != nil || !set || !value {
		t.Fatalf("expected true: value=%v set=%v err=%v", value, set, err)
	}

	t.Setenv("FHEVM_EXAMPLE_ATOMIC", "maybe")
	if _, _, err := GetHostEnvBool("ATOMIC"); err == nil {
		t.Fatal("expected parse error")
	}
}
