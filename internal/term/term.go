// Package term presents a simulation in a terminal. Each logical cell is
// drawn as two blank columns whose background carries the cell color, which
// keeps cells roughly square in most fonts.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/render"
)

// Options controls the terminal loop.
type Options struct {
	// GPS is the number of generations per second. Non-positive means 10.
	GPS  int
	Seed int64
}

// cellStyle returns the style used to paint a cell of color c.
func cellStyle(c core.Color) tcell.Style {
	r, g, b := render.Channels(c)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Draw paints fb onto screen and shows it. Cells beyond the terminal bounds
// are clipped by the screen.
func Draw(screen tcell.Screen, fb *core.Framebuffer) {
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			style := cellStyle(fb.Pixel(x, y))
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	screen.Show()
}

// Run drives sim on screen until Esc, q or Ctrl-C is pressed. Space pauses, n
// advances one generation and r reseeds with the original seed. Only the
// calling goroutine touches the simulation; a helper goroutine forwards
// terminal events.
func Run(screen tcell.Screen, sim core.Sim, opts Options) error {
	gps := opts.GPS
	if gps <= 0 {
		gps = 10
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(gps))
	defer ticker.Stop()

	paused := false
	Draw(screen, sim.Frame())
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					sim.Step()
				case ev.Rune() == 'r':
					sim.Reset(opts.Seed)
				}
			}
			Draw(screen, sim.Frame())
		case <-ticker.C:
			if paused {
				continue
			}
			sim.Step()
			Draw(screen, sim.Frame())
		}
	}
}
