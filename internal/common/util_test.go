package common

import (
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "student"},
		{"   ", "student"},
		{"Admin", "admin"},
		{"ADMIN", "admin"},
		{" course_rep ", "course_rep"},
		{"student", "student"},
	}
	for _, tt := range tests {
		if got := NormalizeRole(tt.in); got != tt.want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleMatches_CaseInsensitive(t *testing.T) {
	if !RoleMatches("Admin", "admin") {
		t.Fatalf("Admin should match admin")
	}
	if !RoleMatches("ADMIN", "Admin") {
		t.Fatalf("ADMIN should match Admin")
	}
	if RoleMatches("Student", "admin") {
		t.Fatalf("Student must not match admin")
	}
	if !RoleMatches("", "student") {
		t.Fatalf("empty role defaults to student")
	}
}
