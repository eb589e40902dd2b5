package prefs

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"segue/pkg/paths"
)

// SessionEnv carries the terminal-session identifier between page processes.
// It is exported into the environment on first use, so child processes of
// this terminal session share one session file while a freshly opened
// terminal starts a new one.
const SessionEnv = "SEGUE_SESSION"

// SessionID returns the current session identifier, minting and exporting
// one if this is the first segue process in the session.
func SessionID() string {
	if id := os.Getenv(SessionEnv); id != "" {
		return id
	}
	id := uuid.NewString()
	// Best effort: without the env var each page process simply gets its
	// own session file, which only weakens flag redundancy.
	_ = os.Setenv(SessionEnv, id)
	return id
}

// SessionPath returns the session-scoped state file for this session.
func SessionPath() string {
	return filepath.Join(paths.GetStateDir(), "sessions", SessionID()+".yaml")
}
