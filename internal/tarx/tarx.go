// Package tarx unpacks flent result bundles.
//
// A bundle is a compressed tarball named `<name>.tar.gz` that contains
// the corresponding `<name>.flent` result file. We treat unpacking as a
// black box and defer to the system tar, like the harness that creates
// the bundles does.
package tarx

import (
	"os"

	"github.com/flentkit/flentreport/internal/model"
	"github.com/flentkit/flentreport/internal/shellx"
)

// Extract unpacks tarball into destdir. The command argument is the
// command line we prepend to tar's extraction arguments: an empty
// command means the system tar, while, e.g., "busybox tar" unpacks
// using busybox instead. The logger, if not nil, logs the command line
// we execute. The destdir is created when it does not exist yet.
func Extract(logger model.Logger, command, tarball, destdir string) error {
	if err := os.MkdirAll(destdir, 0700); err != nil {
		return err
	}
	if command == "" {
		return shellx.Run(logger, "tar", "-x", "-f", tarball, "-C", destdir)
	}
	argv, err := shellx.ParseCommandLine(command)
	if err != nil {
		return err
	}
	argv.Append("-x", "-f", tarball, "-C", destdir)
	config := &shellx.Config{
		Logger: logger,
		Flags:  shellx.FlagShowStdoutStderr,
	}
	return shellx.RunEx(config, argv)
}
