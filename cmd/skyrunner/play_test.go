package main

import (
	"strings"
	"testing"
)

func TestValidatePlayFlags(t *testing.T) {
	fps, difficulty := flagFPS, flagDifficulty
	t.Cleanup(func() {
		flagFPS, flagDifficulty = fps, difficulty
	})

	tests := []struct {
		name       string
		fps        int
		difficulty string
		wantErr    string
	}{
		{"defaults", 60, "", ""},
		{"preset", 30, "hard", ""},
		{"zero fps", 0, "", "--fps"},
		{"negative fps", -5, "", "--fps"},
		{"unknown preset", 60, "nightmare", "difficulty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagFPS, flagDifficulty = tc.fps, tc.difficulty
			err := validatePlayFlags()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("validatePlayFlags() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("validatePlayFlags() = %v, expected error mentioning %s", err, tc.wantErr)
			}
		})
	}
}

func TestRunPlayRejectsZeroFPS(t *testing.T) {
	fps := flagFPS
	t.Cleanup(func() { flagFPS = fps })

	flagFPS = 0
	if err := runPlay(playCmd, nil); err == nil {
		t.Fatal("runPlay() with --fps 0 should fail before starting a session")
	}
}
