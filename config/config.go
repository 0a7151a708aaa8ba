package config

import (
	"os"
	"path/filepath"
	"time"

	coretypes "github.com/projecteru2/core/types"

	"github.com/virtstack/vmherd/utils"
)

// Config holds global vmherd configuration.
type Config struct {
	// VirshBinary is the path or name of the hypervisor control executable.
	// Env: VMHERD_VIRSH_BINARY. Default: "virsh".
	VirshBinary string `json:"virsh_binary" mapstructure:"virsh_binary"`
	// ConnectURI is the libvirt connection URI passed as `virsh -c URI`.
	// Empty means virsh's own default connection.
	// Env: VMHERD_CONNECT_URI.
	ConnectURI string `json:"connect_uri" mapstructure:"connect_uri"`
	// RunDir is the directory for runtime state (the run lock).
	// Env: VMHERD_RUN_DIR. Default: {tmp}/vmherd.
	RunDir string `json:"run_dir" mapstructure:"run_dir"`

	// Interval is the pause between state polls, in seconds.
	// Default: 1.
	Interval float64 `json:"interval" mapstructure:"interval"`
	// Timeout is how long to wait for all machines to shut down, in
	// seconds, measured from the end of the dispatch phase. Default: 30.
	Timeout float64 `json:"timeout" mapstructure:"timeout"`
	// KillOnTimeout force-terminates machines still running when the
	// timeout is reached. Otherwise the run fails. Default: false.
	KillOnTimeout bool `json:"kill_on_timeout" mapstructure:"kill_on_timeout"`
	// Verbose prints per-tick status and lets control-command output
	// through to the terminal. Default: false.
	Verbose bool `json:"verbose" mapstructure:"verbose"`
	// Zenity emits machine-readable progress lines for
	// `zenity --progress` alongside normal output. Default: false.
	Zenity bool `json:"zenity" mapstructure:"zenity"`
	// PoolSize bounds how many shutdown/destroy requests are in flight at
	// once. 1 keeps the phases strictly sequential. Default: 1.
	PoolSize int `json:"pool_size" mapstructure:"pool_size"`

	// Log configuration, uses eru core's ServerLogConfig.
	Log coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all defaults applied. Values are
// overridden by config file, environment, and flags in that order.
func DefaultConfig() *Config {
	return &Config{
		VirshBinary: "virsh",
		RunDir:      filepath.Join(os.TempDir(), "vmherd"),
		Interval:    1,
		Timeout:     30,
		PoolSize:    1,
		Log: coretypes.ServerLogConfig{
			Level: "info",
		},
	}
}

// IntervalDuration converts the poll interval to a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}

// TimeoutDuration converts the shutdown deadline to a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout * float64(time.Second))
}

// LockFile is the run lock path; held for the whole orchestration so two
// bulk shutdowns cannot interleave signals on the same host.
func (c *Config) LockFile() string { return filepath.Join(c.RunDir, "vmherd.lock") }

// EnsureDirs creates the runtime directory tree.
func (c *Config) EnsureDirs() error {
	return utils.EnsureDirs(c.RunDir)
}
