package state

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/hashicorp/terraform-exec/tfexec"

	"github.com/mlorant/tfregen/pkg/pretty"
)

// Pull obtains the current state of the module in the given working
// directory. It does so by running `terraform state pull`.
func Pull(ctx context.Context, workdir string, opts ...PullOption) ([]byte, error) {
	var settings pullSettings

	settings.apply(append(defaultPullOptions(), opts...))

	err := settings.validate(workdir)
	if err != nil {
		return nil, fmt.Errorf("invalid pull options: %w", err)
	}

	tf, err := tfexec.NewTerraform(workdir, settings.terraformBin)
	if err != nil {
		return nil, fmt.Errorf("failed to create Terraform executor: %w", err)
	}

	if !settings.skipInit {
		logCommand(workdir, "terraform init")

		err := tf.Init(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Terraform: %w", err)
		}
	}

	logCommand(workdir, "terraform state pull")

	rawState, err := tf.StatePull(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pull Terraform state: %w", err)
	}

	return []byte(rawState), nil
}

type pullSettings struct {
	terraformBin string
	skipInit     bool
}

// A PullOption configures how the state is pulled.
type PullOption func(*pullSettings)

func defaultPullOptions() []PullOption {
	return []PullOption{
		WithTerraformBin("terraform"),
	}
}

// WithTerraformBin overrides the `terraform` binary used to pull the state.
// If this option is not provided, Pull uses the `terraform` binary it finds
// in the PATH.
func WithTerraformBin(path string) PullOption {
	return func(s *pullSettings) {
		s.terraformBin = path
	}
}

// WithSkipInit configures whether Pull skips initializing the module before
// pulling its state. By default, Pull does not skip this step.
//
// Skipping the init step can save time, but pulling may fail if the module's
// backend was never initialized.
func WithSkipInit(skipInit bool) PullOption {
	return func(s *pullSettings) {
		s.skipInit = skipInit
	}
}

func (s *pullSettings) apply(opts []PullOption) {
	for _, opt := range opts {
		opt(s)
	}
}

func (s *pullSettings) validate(workdir string) error {
	if !isDirectory(workdir) {
		return fmt.Errorf("target directory %q not found", workdir)
	}

	if !isInPath(s.terraformBin) {
		return fmt.Errorf("executable %q not found in PATH", s.terraformBin)
	}

	return nil
}

func isDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

func isInPath(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}

func logCommand(workdir, command string) {
	if workdir == "." {
		workdir = "current directory"
	}
	os.Stderr.WriteString(pretty.Colorf("running [bold]%s[reset] in [bold]%s[reset]...", command, workdir) + "\n")
}
