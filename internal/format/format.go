// Package format styles log messages for terminal display.
package format

import "github.com/mlorant/tfregen/pkg/pretty"

func Info(msg string) string {
	return pretty.Colorf("[blue][bold]Info:[reset] %s", msg) + "\n"
}

func Warning(msg string) string {
	return pretty.Warning(msg) + "\n"
}
