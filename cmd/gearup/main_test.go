package main

import "testing"

func TestStoreRequired(t *testing.T) {
	cases := []struct {
		cmdPath string
		want    bool
	}{
		{"init", true},
		{"tui", true},
		{"status", true},
		{"habit done <habit>", true},
		{"remind set", true},
		{"system notify", true},
		{"system debug db-path", true},
		{"system keyring set <connection-string>", false},
		{"system keyring show", false},
		{"system keyring delete", false},
	}
	for _, tc := range cases {
		if got := storeRequired(tc.cmdPath); got != tc.want {
			t.Errorf("storeRequired(%q) = %v, want %v", tc.cmdPath, got, tc.want)
		}
	}
}

func TestLoadRequired(t *testing.T) {
	cases := []struct {
		cmdPath string
		want    bool
	}{
		{"init", false},
		{"status", true},
		{"habit list", true},
		{"system keyring set <connection-string>", false},
		{"system keyring delete", false},
	}
	for _, tc := range cases {
		if got := loadRequired(tc.cmdPath); got != tc.want {
			t.Errorf("loadRequired(%q) = %v, want %v", tc.cmdPath, got, tc.want)
		}
	}
}
