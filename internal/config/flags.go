package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig        = "config"
	FlagCipher        = "cipher"
	FlagTimeout       = "timeout"
	FlagLocalDriver   = "local-driver"
	FlagLocalDSN      = "local-dsn"
	FlagSharedDriver  = "shared-driver"
	FlagSharedDSN     = "shared-dsn"
	FlagExtensionPath = "extension-path"
	FlagMirrorBlob    = "mirror-blob"
	FlagLogLevel      = "log-level"
	FlagLogFile       = "log-file"
)

// RegisterFlags adds all configuration flags to fs. The CLI registers them
// as persistent flags on the root command.
//
// Flags:
//
//	-c/--config        json file path with configs
//	--cipher           cipher for new tokens (aes-gcm, xchacha20-poly1305)
//	--timeout          per-command timeout (e.g. "5s", "1m")
//	--local-driver     web-app store driver (sqlite3, pgx, memory)
//	--local-dsn        web-app store DSN
//	--shared-driver    shared substrate driver (sqlite3, pgx, memory)
//	--shared-dsn       shared substrate DSN
//	--extension-path   extension bbolt file (empty keeps it in memory)
//	--mirror-blob      copy vault blobs into the extension store
//	--log-level        log level (debug, info, warn, error)
//	--log-file         append logs to this file
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagCipher, "", "Cipher for new tokens (aes-gcm, xchacha20-poly1305)")
	fs.Duration(FlagTimeout, 0, "Per-command timeout (e.g., 5s, 1m)")
	fs.String(FlagLocalDriver, "", "Web-app store driver (sqlite3, pgx, memory)")
	fs.String(FlagLocalDSN, "", "Web-app store DSN")
	fs.String(FlagSharedDriver, "", "Shared substrate driver (sqlite3, pgx, memory)")
	fs.String(FlagSharedDSN, "", "Shared substrate DSN")
	fs.String(FlagExtensionPath, "", "Extension bbolt file")
	fs.Bool(FlagMirrorBlob, false, "Copy vault blobs into the extension store")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Append logs to this file")
}

// parseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Unset flags stay zero so they never override other sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	timeout, err := fs.GetDuration(FlagTimeout)
	if err != nil {
		errs = append(errs, err)
	}
	mirror, err := fs.GetBool(FlagMirrorBlob)
	if err != nil {
		errs = append(errs, err)
	}

	cfg := &StructuredConfig{
		App: App{
			Cipher:  str(FlagCipher),
			Timeout: timeout,
		},
		Storage: Storage{
			Local: KeyValue{
				Driver: str(FlagLocalDriver),
				DSN:    str(FlagLocalDSN),
			},
			Shared: KeyValue{
				Driver: str(FlagSharedDriver),
				DSN:    str(FlagSharedDSN),
			},
			Extension: Extension{
				Path: str(FlagExtensionPath),
			},
		},
		Sync: Sync{
			MirrorBlob: mirror,
		},
		Log: Log{
			Level: str(FlagLogLevel),
			File:  str(FlagLogFile),
		},
		JSONFilePath: str(FlagConfig),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("error reading flags: %w", errors.Join(errs...))
	}
	return cfg, nil
}
