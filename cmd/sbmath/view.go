package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/sugarbomb/internal/config"
	"github.com/taigrr/sugarbomb/pkg/models"
	"github.com/taigrr/sugarbomb/pkg/motion"
	"github.com/taigrr/sugarbomb/pkg/render"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
	"go.uber.org/zap"
)

const (
	gizmoLength = 1.0
	cameraZoom  = 0.8
	// spinSpeed is the widest random impulse on each axis, in degrees per
	// second.
	spinSpeed = 720
)

func runView(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fps := fs.Int("fps", 0, fmt.Sprintf("Target FPS (default %d)", config.DefaultFPS))
	pngPath := fs.String("png", "", "Render one frame to this PNG file instead of the terminal")
	size := fs.Int("size", 256, "Edge length in pixels of the -png image")
	anglesFlag := fs.String("angles", "", "Orientation as pitch,yaw,roll degrees")
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: sbmath view [options] [model.gltf|model.glb]\n\n")
		fmt.Fprintf(e.stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(e.stderr, "\nControls:\n")
		fmt.Fprintf(e.stderr, "  Arrows/WASD - Pitch and yaw\n")
		fmt.Fprintf(e.stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(e.stderr, "  Space       - Random spin\n")
		fmt.Fprintf(e.stderr, "  R           - Reset\n")
		fmt.Fprintf(e.stderr, "  Esc         - Quit\n")
	}
	if done, err := parseCommandFlags(fs, args); done {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}
	e.cfg.Resolve(config.Flags{FPS: *fps})
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var home sbmath.Angles
	if fs.NArg() == 1 {
		scene, err := models.LoadScene(fs.Arg(0))
		if err != nil {
			return err
		}
		if len(scene.Nodes) > 0 {
			home = scene.Nodes[0].Angles
		}
		e.logger.Info("scene loaded",
			zap.String("scene", scene.Name),
			zap.Int("nodes", len(scene.Nodes)),
			zap.String("angles", home.ToString(1)),
		)
	}
	if *anglesFlag != "" {
		a, err := parseAngles(*anglesFlag)
		if err != nil {
			return err
		}
		home = a
	}

	bg := e.cfg.View.Background
	background := render.RGB(bg[0], bg[1], bg[2])

	if *pngPath != "" {
		if *size <= 0 {
			return fmt.Errorf("invalid -size %d", *size)
		}
		fb := render.NewFramebuffer(*size, *size)
		drawFrame(newGizmo(fb), fb, home, background)
		if err := fb.SavePNG(*pngPath); err != nil {
			return err
		}
		e.logger.Info("frame written", zap.String("path", *pngPath), zap.String("angles", home.ToString(1)))
		return nil
	}

	v := newViewer(e.cfg.View, home)
	e.logger.Debug("starting viewer", zap.Int("fps", e.cfg.View.FPS), zap.String("target", home.ToString(1)))
	return v.run(ctx, background)
}

// parseAngles reads "pitch,yaw,roll" in degrees.
func parseAngles(s string) (sbmath.Angles, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return sbmath.AngZero, fmt.Errorf("angles %q: want pitch,yaw,roll", s)
	}
	var a sbmath.Angles
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return sbmath.AngZero, fmt.Errorf("angles %q: %w", s, err)
		}
		a.Set(i, float32(f))
	}
	return a, nil
}

func newGizmo(fb *render.Framebuffer) *render.Wireframe {
	camera := render.NewCamera()
	camera.SetZoom(cameraZoom)
	return render.NewWireframe(camera, fb)
}

// frameColor outlines the viewport.
var frameColor = render.RGB(70, 70, 90)

func drawFrame(wf *render.Wireframe, fb *render.Framebuffer, a sbmath.Angles, bg color.RGBA) {
	fb.Clear(bg)
	fb.DrawRectOutline(0, 0, fb.Width, fb.Height, frameColor)
	wf.DrawOrientation(a, gizmoLength)
}

type keyAction int

const (
	keyNone keyAction = iota
	keyTurn
	keySpin
	keyReset
	keyQuit
)

// keyMatcher is satisfied by uv.KeyPressEvent.
type keyMatcher interface {
	MatchString(s ...string) bool
}

// mapKey translates a key press into an action. For keyTurn, delta is the
// change to the target orientation.
func mapKey(k keyMatcher, step float32) (action keyAction, delta sbmath.Angles) {
	switch {
	case k.MatchString("esc", "ctrl+c"):
		return keyQuit, delta
	case k.MatchString("r"):
		return keyReset, delta
	case k.MatchString("space"):
		return keySpin, delta
	case k.MatchString("w", "up"):
		return keyTurn, sbmath.Ang(-step, 0, 0)
	case k.MatchString("s", "down"):
		return keyTurn, sbmath.Ang(step, 0, 0)
	case k.MatchString("a", "left"):
		return keyTurn, sbmath.Ang(0, step, 0)
	case k.MatchString("d", "right"):
		return keyTurn, sbmath.Ang(0, -step, 0)
	case k.MatchString("q"):
		return keyTurn, sbmath.Ang(0, 0, -step)
	case k.MatchString("e"):
		return keyTurn, sbmath.Ang(0, 0, step)
	}
	return keyNone, delta
}

// viewer owns the animated orientation shown by the terminal gizmo.
type viewer struct {
	cfg    config.ViewConfig
	home   sbmath.Angles
	spring *motion.AngleSpring
	random func() float32
}

func newViewer(cfg config.ViewConfig, home sbmath.Angles) *viewer {
	v := &viewer{
		cfg:    cfg,
		home:   home,
		spring: motion.NewAngleSpring(cfg.FPS, cfg.Frequency, cfg.Damping),
		random: rand.Float32,
	}
	v.spring.SetTarget(home)
	return v
}

// handleKey applies a key press and reports whether the viewer should quit.
func (v *viewer) handleKey(k keyMatcher) bool {
	action, delta := mapKey(k, v.cfg.Step)
	switch action {
	case keyQuit:
		return true
	case keyReset:
		v.spring.Reset()
		v.spring.SetTarget(v.home)
	case keySpin:
		v.spring.Impulse(sbmath.Ang(v.spin(), v.spin(), v.spin()))
	case keyTurn:
		v.spring.SetTarget(v.spring.Target().Add(delta))
	}
	return false
}

func (v *viewer) spin() float32 {
	return (v.random()*2 - 1) * spinSpeed
}

func (v *viewer) run(ctx context.Context, background color.RGBA) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		_ = term.Shutdown(context.Background())
	}()

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	// The last row holds the status line.
	fb := render.NewFramebuffer(render.FramebufferSize(width, max(height-1, 0)))
	gizmo := newGizmo(fb)

	ticker := time.NewTicker(time.Second / time.Duration(v.cfg.FPS))
	defer ticker.Stop()

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				if err := term.Resize(width, height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				fb.Resize(render.FramebufferSize(width, max(height-1, 0)))
			case uv.KeyPressEvent:
				if v.handleKey(ev) {
					return nil
				}
			}

		case <-ticker.C:
			a := v.spring.Update()
			drawFrame(gizmo, fb, a, background)
			fb.Draw(term, uv.Rect(0, 0, width, height-1))
			drawStatus(term, height-1, width, fmt.Sprintf(" pitch/yaw/roll %s  target %s", a.ToString(1), v.spring.Target().ToString(1)))
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

// drawStatus writes an ASCII line into row, padding it to width.
func drawStatus(scr render.CellSetter, row, width int, text string) {
	if row < 0 {
		return
	}
	style := uv.Style{Fg: render.ColorWhite, Bg: render.ColorBlack}
	for x := range width {
		content := " "
		if x < len(text) {
			content = text[x : x+1]
		}
		scr.SetCell(x, row, &uv.Cell{Content: content, Width: 1, Style: style})
	}
}
