package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/traffic-light/audio"
	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
	"github.com/lixenwraith/traffic-light/engine"
	"github.com/lixenwraith/traffic-light/render"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Disable the state change chime")
	describeFlag = flag.Bool("describe", false, "Print the state cycle table as YAML and exit")
)

func main() {
	flag.Parse()

	if *describeFlag {
		if err := describe(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to describe state cycle: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logFile := setupLogging(*debugFlag)
	log.Printf("session %s starting", uuid.NewString())

	err := run(*muteFlag)
	if err != nil {
		log.Printf("session failed: %v", err)
	} else {
		log.Printf("session ended")
	}

	// os.Exit skips deferred calls, so the log is closed here
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "traffic-light: %v\n", err)
		os.Exit(1)
	}
}

// describe writes the state cycle table as YAML
func describe(w io.Writer) error {
	out, err := engine.MarshalCycle()
	if err != nil {
		return fmt.Errorf("failed to marshal cycle: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write cycle: %w", err)
	}
	return nil
}

// run owns the terminal for the lifetime of the UI
func run(mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic Recovery: runs after the deferred Fini below has released the terminal
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	surface := render.NewTerminalSurface(screen, constants.CanvasColumns, constants.CanvasRows)
	app, err := engine.NewAppContext(surface, engine.NewEventScheduler(screen))
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	app.Overlay = render.NewTerminalRenderer(screen, constants.CanvasColumns)

	if !mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without sound)", err)
		} else {
			app.Sound = sm
			defer sm.Cleanup()
		}
	}

	app.Redraw()
	return loop(screen, app)
}

// loop is the single goroutine that runs every click handler and timer callback
func loop(screen tcell.Screen, app *engine.AppContext) error {
	var mouseDown bool

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil

		case *engine.TimerEvent:
			ev.Fire()

		case *tcell.EventKey:
			if isQuit(ev) {
				app.Animation.Disarm()
				return nil
			}
			if ev.Key() == tcell.KeyRune {
				app.HandleKey(ev.Rune())
			}

		case *tcell.EventMouse:
			// Act on the press edge only; drags repeat the button mask
			pressed := ev.Buttons()&tcell.Button1 != 0
			if pressed && !mouseDown {
				x, y := ev.Position()
				app.Click(x, y)
			}
			mouseDown = pressed

		case *tcell.EventResize:
			screen.Clear()
			app.Redraw()
			screen.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == constants.KeyQuit
	}
	return false
}
