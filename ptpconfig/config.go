// Package ptpconfig loads the optional INI override file a caller can
// point this driver at before opening a camera. Grounded on the
// go-ini/ini dependency and the command-line client's loadConfig() call
// site, repurposed from per-protocol port overrides to the transport and
// logging knobs this driver exposes.
package ptpconfig

import (
	"strings"

	"github.com/go-ini/ini"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// Verbosity names a log level. ptp.NewEngine takes a *log.Logger, not a
// Verbosity, and no code in this module maps one onto the other.
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota
	VerbosityNormal
	VerbosityDebug
	VerbosityTrace
)

func parseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return VerbosityNormal, nil
	case "quiet":
		return VerbosityQuiet, nil
	case "debug":
		return VerbosityDebug, nil
	case "trace":
		return VerbosityTrace, nil
	default:
		return 0, ptperr.Newf(ptperr.InvalidValue, "log_verbosity %q is not one of quiet|normal|debug|trace", s)
	}
}

// Config is the optional set of overrides read from an INI file; Default()
// returns the built-in values. bodies.Open takes no Config and nothing in
// this module reads one, so its values take effect only where a caller
// applies them itself.
type Config struct {
	// ChunkSizeBytes is a bulk chunk size to use in place of
	// ptp.DefaultChunkSize.
	ChunkSizeBytes int
	LogVerbosity   Verbosity
	// USBTimeoutMS is a bulk-transfer read/write deadline in
	// milliseconds; 0 means wait indefinitely. The USB transport in
	// package ptp sets no timeout.
	USBTimeoutMS int
}

const defaultChunkSizeBytes = 1 << 20

// Default returns the library's built-in configuration.
func Default() *Config {
	return &Config{ChunkSizeBytes: defaultChunkSizeBytes, LogVerbosity: VerbosityNormal, USBTimeoutMS: 0}
}

// Load reads path as an INI file and returns the resulting Config. Keys
// absent from the file fall back to Default()'s values.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, ptperr.Wrap(ptperr.Parse, "loading config file "+path, err)
	}

	cfg := Default()
	section := f.Section("")

	if key := section.Key("chunk_size_bytes"); key.String() != "" {
		v, err := key.Int()
		if err != nil {
			return nil, ptperr.Wrap(ptperr.Parse, "parsing chunk_size_bytes", err)
		}
		if v <= 0 {
			return nil, ptperr.Newf(ptperr.InvalidValue, "chunk_size_bytes must be positive, got %d", v)
		}
		cfg.ChunkSizeBytes = v
	}

	if key := section.Key("log_verbosity"); key.String() != "" {
		v, err := parseVerbosity(key.String())
		if err != nil {
			return nil, err
		}
		cfg.LogVerbosity = v
	}

	if key := section.Key("usb_timeout_ms"); key.String() != "" {
		v, err := key.Int()
		if err != nil {
			return nil, ptperr.Wrap(ptperr.Parse, "parsing usb_timeout_ms", err)
		}
		if v < 0 {
			return nil, ptperr.Newf(ptperr.InvalidValue, "usb_timeout_ms must not be negative, got %d", v)
		}
		cfg.USBTimeoutMS = v
	}

	return cfg, nil
}
