package userconfig

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ReduceMotionEnv forces reduced motion when set to anything non-empty,
// regardless of the config file.
const ReduceMotionEnv = "SEGUE_REDUCE_MOTION"

// ReducedMotion reports whether transition animations should be skipped:
// the config setting, the environment override, or a non-interactive
// output all suppress motion.
func (c *Config) ReducedMotion() bool {
	if c != nil && c.Settings != nil && c.Settings.ReduceMotion {
		return true
	}
	if os.Getenv(ReduceMotionEnv) != "" {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
