package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/sugarbomb/internal/config"
	"github.com/taigrr/sugarbomb/pkg/models"
	"go.uber.org/zap"
)

func runInspect(_ context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	precision := fs.Int("precision", config.DefaultPrecision, "Decimals printed per value")
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: sbmath inspect [-precision P] <model.gltf|model.glb>\n\n")
		fs.PrintDefaults()
	}
	if done, err := parseCommandFlags(fs, args); done {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	var flags config.Flags
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "precision" {
			flags.Precision = precision
		}
	})
	e.cfg.Resolve(flags)
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	path := fs.Arg(0)
	scene, err := models.LoadScene(path)
	if err != nil {
		return err
	}
	e.logger.Info("scene loaded",
		zap.String("path", path),
		zap.String("scene", scene.Name),
		zap.Int("nodes", len(scene.Nodes)),
	)

	writeScene(e.stdout, scene, e.cfg.Inspect.Decimals())
	return nil
}

func writeScene(w io.Writer, scene *models.Scene, precision int) {
	fmt.Fprintf(w, "scene %q: %d nodes, bounds %s\n", scene.Name, len(scene.Nodes), scene.Bounds.ToString(precision))
	for _, n := range scene.Nodes {
		indent := strings.Repeat("  ", n.Depth+1)
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("#%d", n.Index)
		}

		fmt.Fprintf(w, "%s%s\n", indent, name)
		fmt.Fprintf(w, "%s  angles:      %s\n", indent, n.Angles.ToString(precision))
		fmt.Fprintf(w, "%s  translation: %s\n", indent, n.Translation.ToString(precision))
		fmt.Fprintf(w, "%s  rotation:    %s\n", indent, n.Rotation.ToString(precision))
		fmt.Fprintf(w, "%s  scale:       %s\n", indent, n.Scale.ToString(precision))
		for i, row := range n.World {
			label := "world:      "
			if i > 0 {
				label = "            "
			}
			fmt.Fprintf(w, "%s  %s %s\n", indent, label, row.ToString(precision))
		}
		if !n.Bounds.Empty() {
			fmt.Fprintf(w, "%s  bounds:      %s\n", indent, n.Bounds.ToString(precision))
		}
	}
}
