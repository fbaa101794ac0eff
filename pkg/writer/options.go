package writer

import "fmt"

// An Option configures a Writer's behavior.
type Option func(*settings)

// WithOutputDir sets the directory the Writer writes generated files into.
func WithOutputDir(dir string) Option {
	return func(s *settings) {
		s.outputDir = dir
	}
}

type settings struct {
	outputDir string
}

func newSettings() *settings {
	return &settings{}
}

func defaultOptions() []Option {
	return []Option{
		WithOutputDir("generated_terraform"),
	}
}

func (s *settings) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

func (s *settings) validate() error {
	if s.outputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	return nil
}
