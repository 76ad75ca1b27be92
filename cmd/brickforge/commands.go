package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dvriend/brickforge/pkg/brick"
	"github.com/dvriend/brickforge/pkg/catalog"
	"github.com/dvriend/brickforge/pkg/engine"
	"github.com/dvriend/brickforge/pkg/export"
	"github.com/dvriend/brickforge/pkg/kernel/sdfx"
	"github.com/dvriend/brickforge/pkg/manifest"
)

// errScript marks evaluation failures in scripts and manifests, so main can
// pick the right exit code. The individual errors go to stderr.
var errScript = errors.New("script evaluation failed")

// runOptions holds the persistent flags shared by every generating command.
type runOptions struct {
	exportDir  string
	format     string
	system     string
	resolution int
	catalog    string
	dryRun     bool
	verbose    bool
}

// newRootCmd builds the full command tree.
//
// Commands provided:
//   - brick <studs-x> <studs-y> [plates]
//   - corner <left-length> <left-width> <bottom-length> <bottom-height> [plates]
//   - holed <hole-x> <hole-y> <side-x> <side-y> [plates]
//   - pocket <studs-x> <studs-y> <inner-height> [floor-height]
//   - slope <studs-x> <studs-y> [plates [top-studs]]
//   - series <studs-x> <max-studs-y> [plates]
//   - generate <manifest.hcl>
//   - run <script.zy>
//
// Global flags: --export-dir, --format, --system, --resolution, --catalog,
// --dry-run, --verbose
func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "brickforge",
		Short: "Generate printable toy bricks",
		Long: "Generate Lego and Duplo compatible bricks as STL or 3MF meshes.\n" +
			"Bricks are parametric: dimensions are given in studs and plate heights.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.exportDir, "export-dir", "d", ".", "Directory to write mesh files into (must exist)")
	pf.StringVarP(&opts.format, "format", "f", "stl", "Mesh file format: stl or 3mf")
	pf.StringVarP(&opts.system, "system", "s", "lego", "Dimension system: lego or duplo")
	pf.IntVarP(&opts.resolution, "resolution", "r", 0, "Marching cubes cells per axis (0 = default)")
	pf.StringVar(&opts.catalog, "catalog", "", "Write a spreadsheet inventory of generated bricks to this path")
	pf.BoolVarP(&opts.dryRun, "dry-run", "n", false, "List what would be generated without writing files")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(brickCmd(opts))
	cmd.AddCommand(cornerCmd(opts))
	cmd.AddCommand(holedCmd(opts))
	cmd.AddCommand(pocketCmd(opts))
	cmd.AddCommand(slopeCmd(opts))
	cmd.AddCommand(seriesCmd(opts))
	cmd.AddCommand(generateCmd(opts))
	cmd.AddCommand(runCmd(opts))

	return cmd
}

// atoiArg parses a positional integer argument.
func atoiArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", brick.ErrDimensions, name, s)
	}
	return n, nil
}

// optArg parses an optional trailing integer argument, falling back to def.
func optArg(name string, args []string, idx, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	return atoiArg(name, args[idx])
}

func brickCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "brick <studs-x> <studs-y> [plates]",
		Short: "Generate a rectangular brick or plate",
		Long: "Generate a rectangular brick. Height is given in plate heights:\n" +
			"1 = plate, 3 = standard brick.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s brick.Regular
			var err error
			if s.StudsX, err = atoiArg("studs-x", args[0]); err != nil {
				return err
			}
			if s.StudsY, err = atoiArg("studs-y", args[1]); err != nil {
				return err
			}
			if s.Plates, err = optArg("plates", args, 2, 3); err != nil {
				return err
			}
			return runBatch(cmd, opts, singleBatch(s))
		},
	}
}

func cornerCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "corner <left-length> <left-width> <bottom-length> <bottom-height> [plates]",
		Short: "Generate an L-shaped corner brick",
		Long: "Generate an L-shaped corner brick from two limbs: a left limb of\n" +
			"left-length x left-width studs and a bottom limb extending\n" +
			"bottom-length studs at bottom-height studs deep.",
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s brick.Corner
			var err error
			if s.LeftLength, err = atoiArg("left-length", args[0]); err != nil {
				return err
			}
			if s.LeftWidth, err = atoiArg("left-width", args[1]); err != nil {
				return err
			}
			if s.BottomLength, err = atoiArg("bottom-length", args[2]); err != nil {
				return err
			}
			if s.BottomHeight, err = atoiArg("bottom-height", args[3]); err != nil {
				return err
			}
			if s.Plates, err = optArg("plates", args, 4, 3); err != nil {
				return err
			}
			return runBatch(cmd, opts, singleBatch(s))
		},
	}
}

func holedCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "holed <hole-x> <hole-y> <side-x> <side-y> [plates]",
		Short: "Generate a brick with a walled rectangular hole",
		Long: "Generate a brick with a hole-x by hole-y stud hole through it,\n" +
			"surrounded by side-x and side-y studs of solid brick on each side.",
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s brick.Holed
			var err error
			if s.HoleX, err = atoiArg("hole-x", args[0]); err != nil {
				return err
			}
			if s.HoleY, err = atoiArg("hole-y", args[1]); err != nil {
				return err
			}
			if s.SideX, err = atoiArg("side-x", args[2]); err != nil {
				return err
			}
			if s.SideY, err = atoiArg("side-y", args[3]); err != nil {
				return err
			}
			if s.Plates, err = optArg("plates", args, 4, 3); err != nil {
				return err
			}
			return runBatch(cmd, opts, singleBatch(s))
		},
	}
}

func pocketCmd(opts *runOptions) *cobra.Command {
	var floorStuds bool

	cmd := &cobra.Command{
		Use:   "pocket <studs-x> <studs-y> <inner-height> [floor-height]",
		Short: "Generate an open box",
		Long: "Generate an open box with one-stud walls and a raised floor.\n" +
			"Heights are given in plate heights.",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s brick.Pocket
			var err error
			if s.StudsX, err = atoiArg("studs-x", args[0]); err != nil {
				return err
			}
			if s.StudsY, err = atoiArg("studs-y", args[1]); err != nil {
				return err
			}
			if s.InnerHeight, err = atoiArg("inner-height", args[2]); err != nil {
				return err
			}
			if s.FloorHeight, err = optArg("floor-height", args, 3, 1); err != nil {
				return err
			}
			s.FloorStuds = floorStuds
			return runBatch(cmd, opts, singleBatch(s))
		},
	}

	cmd.Flags().BoolVar(&floorStuds, "floor-studs", false, "Put studs on the pocket floor")
	return cmd
}

func slopeCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "slope <studs-x> <studs-y> [plates [top-studs]]",
		Short: "Generate a slope brick",
		Long: "Generate a brick whose top slopes down from top-studs studded\n" +
			"columns at full height to a low front edge.",
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s brick.Slope
			var err error
			if s.StudsX, err = atoiArg("studs-x", args[0]); err != nil {
				return err
			}
			if s.StudsY, err = atoiArg("studs-y", args[1]); err != nil {
				return err
			}
			if s.Plates, err = optArg("plates", args, 2, 3); err != nil {
				return err
			}
			if s.TopStuds, err = optArg("top-studs", args, 3, 1); err != nil {
				return err
			}
			return runBatch(cmd, opts, singleBatch(s))
		},
	}
}

func seriesCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "series <studs-x> <max-studs-y> [plates]",
		Short: "Generate a series of bricks of increasing length",
		Long: "Generate one brick per length from studs-x up to max-studs-y,\n" +
			"all studs-x wide at the same height.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s brick.Series
			var err error
			if s.StudsX, err = atoiArg("studs-x", args[0]); err != nil {
				return err
			}
			if s.MaxStudsY, err = atoiArg("max-studs-y", args[1]); err != nil {
				return err
			}
			if s.Plates, err = optArg("plates", args, 2, 3); err != nil {
				return err
			}
			b := &brick.Batch{}
			if err := b.AddSeries(s); err != nil {
				return err
			}
			return runBatch(cmd, opts, b)
		},
	}
}

func generateCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <manifest.hcl>",
		Short: "Generate all bricks declared in an HCL manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := manifest.Load(args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return fmt.Errorf("%w: %s", errScript, args[0])
			}
			return runBatch(cmd, opts, b)
		},
	}
}

func runCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.zy>",
		Short: "Run a brick script",
		Long: "Evaluate a Lisp brick script in a sandbox and generate the bricks\n" +
			"it describes. Scripts cannot touch the filesystem; all file output\n" +
			"happens after evaluation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			b, evalErrs, err := engine.NewEngine().Evaluate(string(source))
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", args[0], e.Error())
				}
				return fmt.Errorf("%w: %s", errScript, args[0])
			}
			return runBatch(cmd, opts, b)
		},
	}
}

// singleBatch wraps one spec in a batch.
func singleBatch(s brick.Spec) *brick.Batch {
	b := &brick.Batch{}
	b.Add(s)
	return b
}

// runBatch is the shared generation pipeline: resolve settings, build each
// spec into a solid, export it, and optionally write a catalog. Settings in
// the batch (from a manifest or script) take precedence over flags.
func runBatch(cmd *cobra.Command, opts *runOptions, b *brick.Batch) error {
	dir := opts.exportDir
	if b.ExportDir != "" {
		dir = b.ExportDir
	}
	formatName := opts.format
	if b.Format != "" {
		formatName = b.Format
	}
	systemName := opts.system
	if b.System != "" {
		systemName = b.System
	}
	resolution := opts.resolution
	if b.Resolution != 0 {
		resolution = b.Resolution
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	sys, ok := brick.SystemByName(systemName)
	if !ok {
		return fmt.Errorf("%w: unknown system %q", brick.ErrDimensions, systemName)
	}

	// Validate everything up front so a typo in the last brick does not
	// waste a long render of the first ones.
	for _, spec := range b.Specs {
		if err := spec.Validate(); err != nil {
			return err
		}
	}

	log := slog.Default()

	if opts.dryRun {
		for _, spec := range b.Specs {
			w, l, h := spec.OverallMM(sys)
			fmt.Fprintf(cmd.OutOrStdout(), "%s.%s  %s  %.1f x %.1f x %.1f mm\n",
				spec.Name(), format, spec.Variant(), w, l, h)
		}
		log.Info("dry run", "bricks", len(b.Specs), "system", sys.Name, "dir", dir)
		return nil
	}

	k := sdfx.New()
	if resolution > 0 {
		k = sdfx.NewWithResolution(resolution)
	}
	builder := brick.NewBuilder(k, sys)
	exporter, err := export.New(k, dir, format, log)
	if err != nil {
		return err
	}

	cat := catalog.New()
	for _, spec := range b.Specs {
		log.Debug("building", "name", spec.Name(), "variant", spec.Variant())
		solid, err := builder.Build(spec)
		if err != nil {
			return err
		}
		path, err := exporter.Export(spec.Name(), solid)
		if err != nil {
			return err
		}
		cat.Add(spec, sys, path)
	}

	if opts.catalog != "" {
		if err := cat.WriteXLSX(opts.catalog); err != nil {
			return err
		}
		log.Info("catalog written", "path", opts.catalog, "bricks", cat.Len())
	}

	log.Info("done", "bricks", len(b.Specs), "system", sys.Name, "format", format)
	return nil
}
