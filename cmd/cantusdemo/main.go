// Command cantusdemo renders the control panel offline from synthetic
// playback state and writes the result as PNG frames.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/CodedNil/cantus"
	"github.com/CodedNil/cantus/config"
	"github.com/CodedNil/cantus/render"
)

func main() {
	var (
		output     = flag.String("output", "panel.png", "output file (frame index inserted when frames > 1)")
		configPath = flag.String("config", "", "TOML config file (defaults used when empty)")
		frames     = flag.Int("frames", 1, "number of frames to render")
		fps        = flag.Float64("fps", 30, "frame rate used to advance time between frames")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	cantus.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	images := cantus.NewTextureArray()
	coverIndex := render.IngestArt(images, syntheticCover(), 0)
	warp := render.WarpSource(syntheticCover(), 128)

	comp := render.NewCompositor(render.WithImages(images))
	defer comp.Close()

	target := render.NewPixmapTarget(int(cfg.Panel.Width), int(cfg.Panel.Height))

	for i := 0; i < *frames; i++ {
		now := 10 + float64(i)/(*fps)
		frame := buildFrame(&cfg, now, coverIndex, warp)

		target.Clear()
		if err := comp.Render(target, frame); err != nil {
			log.Fatalf("Render failed: %v", err)
		}

		path := *output
		if *frames > 1 {
			path = fmt.Sprintf("%s.%03d.png", *output, i)
		}
		if err := target.SavePNG(path); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d)\n", path, target.Width(), target.Height())
	}
}

// buildFrame assembles a playback scene: a track pill with watched
// progress and cover art, two icons, the playhead mid-crossfade, and a
// seek burst a third of a second old.
func buildFrame(cfg *config.Config, now float64, coverIndex int, warp *cantus.Texture) *render.Frame {
	anchors := cfg.Theme.AnchorColors()
	panelY := cfg.Panel.StartY
	panelH := cfg.Panel.PanelHeight
	playheadX := cfg.Panel.Width * 0.55

	state := cantus.FrameState{
		Screen:      cantus.Vec2{X: cfg.Panel.Width, Y: cfg.Panel.Height},
		PanelY:      panelY,
		PanelHeight: panelH,
		Cursor:      cantus.Vec2{X: cfg.Panel.Width * 0.3, Y: panelY + panelH/2},
		Scale:       cfg.Panel.Scale,
		PlayheadX:   playheadX,
		Time:        now,
		Expansion: cantus.ExpansionEvent{
			Pos:  cantus.Vec2{X: playheadX, Y: panelY + panelH/2},
			Time: now - 0.3,
		},
	}

	pill := cantus.BackgroundPill{
		Rect:        cantus.Rect{X0: 10, Y0: panelY, X1: cfg.Panel.Width - 10, Y1: panelY + panelH},
		Shape:       cantus.PillRounded,
		CornerLeft:  panelH / 2,
		CornerRight: 12,
		Colors:      anchors,
		Alpha:       1,
		DarkWidth:   (cfg.Panel.Width - 20) * 0.55,
		ImageIndex:  coverIndex,
	}

	icons := []cantus.IconInstance{
		{
			Pos:      cantus.Vec2{X: cfg.Panel.Width * 0.3, Y: panelY + panelH/2},
			Variant:  cantus.IconStar,
			Activity: wipeProgress(now, cfg.Animation.ToggleDuration),
		},
		{
			Pos:        cantus.Vec2{X: cfg.Panel.Width*0.3 + 30, Y: panelY + panelH/2},
			Variant:    cantus.IconSquircle,
			Activity:   0.2,
			ImageIndex: coverIndex,
		},
	}
	// Icon rows fade up as the cursor nears them.
	for i := range icons {
		icons[i].Alpha = hoverAlpha(state.Cursor, icons[i].Pos, state.Scale)
	}

	// Crossfade the play glyph out and the pause glyph in over one
	// second, looping.
	phase := math.Mod(now, 2) / 2
	playhead := &cantus.PlayheadState{
		Volume:    0.7,
		BarLerp:   cantus.Smoothstep(0.1, 0.4, phase),
		PlayLerp:  cantus.Clamp(0.5+phase, 0, 1),
		PauseLerp: cantus.Clamp(phase-0.2, 0, 1),
	}

	particles := &cantus.ParticleRing{}
	seedBurst(particles, state.Expansion, cfg.Animation.ParticleDuration)

	return &render.Frame{
		State:      state,
		Background: warp,
		Pills:      []cantus.BackgroundPill{pill},
		Icons:      icons,
		Playhead:   playhead,
		Particles:  particles,
	}
}

// hoverAlpha fades an icon row from a resting 0.55 up to full opacity
// as the cursor approaches within 60 logical pixels.
func hoverAlpha(cursor, pos cantus.Vec2, scale float64) float64 {
	dist := pos.Sub(cursor).Length() / scale
	return cantus.Mix(0.55, 1, cantus.Smoothstep(60, 20, dist))
}

// wipeProgress loops the star wipe back and forth.
func wipeProgress(now, duration float64) float64 {
	p := math.Mod(now/(duration*8), 2)
	if p > 1 {
		p = 2 - p
	}
	return p
}

// seedBurst spawns a ring of particles at the seek position.
func seedBurst(ring *cantus.ParticleRing, ev cantus.ExpansionEvent, duration float64) {
	if ev.Time <= 0 {
		return
	}
	const count = 24
	for i := 0; i < count; i++ {
		angle := float64(i) / count * 2 * math.Pi
		speed := 60 + 40*math.Sin(float64(i)*1.7)
		ring.Spawn(cantus.Particle{
			SpawnPos:  ev.Pos,
			SpawnVel:  cantus.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle)*speed - 50},
			SpawnTime: ev.Time,
			Duration:  duration,
			Color:     cantus.Pack(cantus.RGB(0.95, 0.9, 0.7)),
		})
	}
}

// syntheticCover paints a simple radial sweep so the demo needs no
// image assets on disk.
func syntheticCover() image.Image {
	const size = 128
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x)/size - 0.5
			dy := float64(y)/size - 0.5
			r := math.Sqrt(dx*dx + dy*dy)
			a := math.Atan2(dy, dx)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(120 + 100*math.Sin(a*3)),
				G: uint8(90 + 80*math.Cos(r*9)),
				B: uint8(140 + 90*math.Sin(r*6+a)),
				A: 255,
			})
		}
	}
	return img
}
