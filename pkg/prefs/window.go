package prefs

import (
	"encoding/json"
	"os"
)

// WindowStateEnv is the environment variable holding the per-window
// serialized state object. The environment survives a full page teardown
// and an exec into the next page process, but never crosses into a new
// terminal window, which makes it the fallback channel for environments
// where the file stores are unavailable (read-only home, full disk).
const WindowStateEnv = "SEGUE_WINDOW_STATE"

// windowStateField is the nested field segue owns inside the state object.
// Other tools sharing the variable keep their fields untouched.
const windowStateField = "segue"

// Window is a Backend round-tripping a small JSON state object through a
// single environment variable.
type Window struct {
	env string
}

// NewWindow returns a window backend over the named environment variable.
func NewWindow(env string) *Window {
	return &Window{env: env}
}

// readState parses the state object. Malformed or missing content reads as
// an empty state, never an error.
func (w *Window) readState() map[string]any {
	raw := os.Getenv(w.env)
	if raw == "" {
		return map[string]any{}
	}
	var state map[string]any
	if err := json.Unmarshal([]byte(raw), &state); err != nil || state == nil {
		return map[string]any{}
	}
	return state
}

func (w *Window) writeState(state map[string]any) bool {
	data, err := json.Marshal(state)
	if err != nil {
		return false
	}
	return os.Setenv(w.env, string(data)) == nil
}

func (w *Window) entries(state map[string]any) map[string]any {
	nested, ok := state[windowStateField].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return nested
}

func (w *Window) Get(key string) (string, bool) {
	v, ok := w.entries(w.readState())[key].(string)
	return v, ok
}

func (w *Window) Set(key, value string) bool {
	state := w.readState()
	nested := w.entries(state)
	nested[key] = value
	state[windowStateField] = nested
	return w.writeState(state)
}

func (w *Window) Remove(key string) bool {
	state := w.readState()
	nested := w.entries(state)
	if _, ok := nested[key]; !ok {
		return false
	}
	delete(nested, key)
	if len(nested) == 0 {
		delete(state, windowStateField)
	} else {
		state[windowStateField] = nested
	}
	return w.writeState(state)
}
