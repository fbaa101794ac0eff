package logger

import (
	"fmt"
	"os"

	"github.com/mlorant/tfregen/internal/format"
)

func Info(msg string) {
	fmt.Fprint(os.Stderr, format.Info(msg))
}

func Warning(msg string) {
	fmt.Fprint(os.Stderr, format.Warning(msg))
}
