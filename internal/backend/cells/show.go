package cells

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

// Show takes over the terminal, draws r and waits for a key press. The
// terminal is restored on every return path, including panics.
func Show(r render.Renderable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()

	return Display(screen, r)
}

// Display draws r on an initialised screen and blocks until a key is pressed
// or the screen stops delivering events. Resizes redraw.
func Display(screen tcell.Screen, r render.Renderable) error {
	draw := func() error {
		screen.Clear()
		width, _ := screen.Size()
		if err := render.Render(New(screen, 0, 0, width), r); err != nil {
			return err
		}
		screen.Show()
		return nil
	}

	if err := draw(); err != nil {
		return err
	}

	for {
		switch screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := draw(); err != nil {
				return err
			}
		}
	}
}
