// Command cursesdemo draws a bordered status pane and a greeting window,
// holds them on screen briefly, then tears everything down. Run with
// -config to select a driver (tcell by default):
//
//	cursesdemo -config demo.toml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/termcanvas/config"
	"github.com/lixenwraith/termcanvas/curses"
	"github.com/lixenwraith/termcanvas/driver"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	holdMs := flag.Int("hold", 2000, "milliseconds to hold the screen")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	scr, err := curses.Init(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer scr.End()

	// A panic mid-draw leaves the terminal in raw mode on the alternate
	// screen; restore it before reporting
	defer func() {
		if r := recover(); r != nil {
			driver.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\npanic: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(scr, time.Duration(*holdMs)*time.Millisecond); err != nil {
		scr.End()
		log.Fatalf("demo: %v", err)
	}
}

func run(scr *curses.Screen, hold time.Duration) error {
	if err := scr.InitPair(1, curses.ColorRed, curses.ColorBlack); err != nil {
		return err
	}
	if err := scr.InitPair(2, curses.ColorCyan, curses.ColorBlack); err != nil {
		return err
	}

	scr.CursSet(0)

	// Greeting window
	w, err := scr.NewWindow(10, 20, 0, 0)
	if err != nil {
		return err
	}
	wp, err := curses.NewWindowPtr(w)
	if err != nil {
		return err
	}
	defer wp.Close()

	w.Border(0, 0, 0, 0, 0, 0, 0, 0)
	w.AttrOn(curses.AttrBold | curses.ColorPair(2))
	w.MvPrint(1, 1, "Hello")
	w.AttrOff(curses.AttrBold)
	w.MvPrintf(2, 1, "size %dx%d", w.MaxY(), w.MaxX())
	if err := w.Refresh(); err != nil {
		return err
	}

	// Status pane along the bottom
	cols, rows := scr.Size()
	status, err := scr.NewWindow(3, cols, rows-3, 0)
	if err != nil {
		return err
	}
	sp, err := curses.NewWindowPtr(status)
	if err != nil {
		return err
	}
	defer sp.Close()

	status.Border('|', '|', '-', '-', '+', '+', '+', '+')
	status.AttrOn(curses.ColorPair(1))
	status.MvPrintf(1, 2, "driver ready, %d cols x %d rows", cols, rows)
	if err := status.Refresh(); err != nil {
		return err
	}

	scr.Beep()
	time.Sleep(hold)
	return nil
}
