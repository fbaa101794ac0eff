package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/mlorant/tfregen/pkg/engine"
	"github.com/mlorant/tfregen/pkg/hclgen"
	"github.com/mlorant/tfregen/pkg/logger"
	"github.com/mlorant/tfregen/pkg/pretty"
	"github.com/mlorant/tfregen/pkg/state"
	"github.com/mlorant/tfregen/pkg/writer"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, engine.ErrNoResources) {
			os.Stderr.WriteString(pretty.Error(err) + "\n")
		}
		os.Exit(1)
	}
}

//go:embed VERSION
var tfregenVersion string

func run() error {
	parseFlags()

	if noColor {
		pretty.DisableColors()
	}

	if printVersion {
		fmt.Println(tfregenVersion)
		return nil
	}

	args := flag.Args()
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one argument: the state file to convert (or a working directory with --pull)")
	}

	raw, err := loadState(context.TODO(), args[0])
	if err != nil {
		return err
	}

	doc, err := state.Decode(raw)
	if err != nil {
		return err
	}

	resources := engine.Extract(doc)

	if !quiet {
		categorized := make([]pretty.CategorizedType, 0, len(resources))
		for _, r := range resources {
			categorized = append(categorized, pretty.CategorizedType{Category: r.Category, Type: r.Type})
		}

		summarizer := pretty.NewSummarizer(categorized)
		os.Stderr.WriteString("\n" + summarizer.Summary() + "\n\n")
	}

	if summaryOnly {
		return nil
	}

	if len(resources) == 0 {
		logger.Warning("nothing to generate: the state document declares no resources")
		return engine.ErrNoResources
	}

	groups := engine.Group(resources)

	if !quiet {
		logger.Info(fmt.Sprintf("generating configuration for %d categories", len(groups)))
	}

	files, err := hclgen.Files(resources, groups)
	if err != nil {
		return err
	}

	w, err := writer.New(writer.WithOutputDir(outputDir))
	if err != nil {
		return err
	}

	if err := w.Write(files); err != nil {
		return fmt.Errorf("failed to write generated configuration: %w", err)
	}

	if !quiet {
		os.Stderr.WriteString(pretty.Colorf("%s written to [bold][green]%s",
			pretty.StyledNumResources(len(resources)), w.OutputDir()))
		os.Stderr.WriteString("\n")
	}

	return nil
}

func loadState(ctx context.Context, target string) ([]byte, error) {
	if pullState {
		return state.Pull(ctx, target,
			state.WithTerraformBin(terraformBin),
			state.WithSkipInit(skipInit),
		)
	}

	return state.Load(target)
}

// Flags
var (
	noColor      bool
	outputDir    string
	printVersion bool
	pullState    bool
	quiet        bool
	skipInit     bool
	summaryOnly  bool
	terraformBin string
)

func parseFlags() {
	flag.BoolVar(&noColor, "no-color", false, "disable color in output")
	flag.StringVarP(&outputDir, "output-dir", "o", "generated_terraform", "`directory` to write generated configuration to")
	flag.BoolVarP(&printVersion, "version", "V", false, "print version and exit")
	flag.BoolVar(&pullState, "pull", false, "treat the argument as a working directory and run terraform state pull there")
	flag.BoolVarP(&quiet, "quiet", "q", false, "suppress all human-readable output")
	flag.BoolVarP(&skipInit, "skip-init", "s", false, "skip running terraform init (only with --pull)")
	flag.BoolVar(&summaryOnly, "summary-only", false, "print the resource summary and skip file generation")
	flag.StringVar(&terraformBin, "terraform-bin", "terraform", "terraform binary to use (only with --pull)")

	flag.Parse()
}
