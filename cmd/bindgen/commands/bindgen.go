// Package commands wires the bindgen CLI.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/roc-streaming/bindgen/config"
	"github.com/roc-streaming/bindgen/doxygen"
	"github.com/roc-streaming/bindgen/errors"
	"github.com/roc-streaming/bindgen/gen"
	"github.com/roc-streaming/bindgen/gen/golang"
	"github.com/roc-streaming/bindgen/gen/java"
	"github.com/roc-streaming/bindgen/logger"
	"github.com/roc-streaming/bindgen/resolve"
)

// RootCmd parses the Doxygen export of a roc-toolkit checkout and
// regenerates binding source stubs in the target checkouts.
var RootCmd = &cobra.Command{
	Use:           "bindgen",
	Short:         "Generate roc-toolkit binding sources from Doxygen XML",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := RootCmd.Flags()
	flags.StringP("target", "t", "all", "bindings to generate: go, java, or all")
	flags.String("toolkit-dir", "", "roc-toolkit checkout to read docs from")
	flags.String("doxygen-dir", "", "Doxygen XML export directory (default: derived from toolkit dir)")
	flags.String("go-output-dir", "", "roc-go checkout to write into")
	flags.String("java-output-dir", "", "roc-java checkout to write into")
	flags.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")

	RootCmd.AddCommand(VersionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	verbosity, _ := flags.GetCount("verbose")
	if err := logger.Initialize(verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer logger.Cleanup()

	v, err := config.NewViper()
	if err != nil {
		return err
	}
	for key, flag := range map[string]string{
		"target":          "target",
		"toolkit_dir":     "toolkit-dir",
		"doxygen_dir":     "doxygen-dir",
		"go_output_dir":   "go-output-dir",
		"java_output_dir": "java-output-dir",
	} {
		if flags.Changed(flag) {
			value, _ := flags.GetString(flag)
			v.Set(key, value)
		}
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}

	root, err := doxygen.Parse(cfg.ToolkitDir, cfg.ResolveDoxygenDir())
	if err != nil {
		return err
	}

	refs := resolve.NewIndex(root)
	logger.Debugw("resolved documentation references", "count", refs.Len())

	var generators []gen.Generator
	if cfg.WantGo() {
		if err := checkOutputDir(cfg.GoOutputDir); err != nil {
			return err
		}
		generators = append(generators, golang.NewGenerator(cfg.GoOutputDir, root, refs))
	}
	if cfg.WantJava() {
		if err := checkOutputDir(cfg.JavaOutputDir); err != nil {
			return err
		}
		generators = append(generators, java.NewGenerator(cfg.JavaOutputDir, root, refs))
	}

	for _, g := range generators {
		logger.Infow("running generator", "language", g.Language())
		if err := gen.Run(root, g); err != nil {
			return err
		}
	}

	return nil
}

// checkOutputDir requires the target checkout to already exist; creating it
// here would silently generate into an empty tree instead of the binding
// repo.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.Wrapf(errors.ErrMissingOutputDir, "%s", dir)
	}
	return nil
}
