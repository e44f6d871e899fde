// Command wtreeprint builds a sample element tree, lays it out at a given
// size, and prints the tree and optionally the paint operations.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/mjl-/wtree"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wtreeprint [-config file] [-size WxH] [-draw]")
	flag.PrintDefaults()
	os.Exit(2)
}

func build(selected string) *wtree.Widget {
	var lines []*wtree.Widget
	for i := 0; i < 40; i++ {
		lines = append(lines, wtree.NewLabel(fmt.Sprintf("line %d of the scrolled content, long enough to wrap in a narrow window", i)))
	}
	radio := func(value string) *wtree.Widget {
		return wtree.W(wtree.RadiobuttonKind, wtree.RadiobuttonProps{
			Group:    "mode",
			Value:    value,
			Selected: value == selected,
		}).WithKey("radio-" + value)
	}
	return wtree.W(wtree.DockKind, wtree.DockProps{Spaces: map[wtree.Band]int{wtree.BandLeft: 160}},
		wtree.NewLabel("wtreeprint").WithLayoutData(wtree.BandTop),
		wtree.NewVBox(
			radio("fast"), wtree.NewLabel("fast"),
			radio("slow"), wtree.NewLabel("slow"),
			wtree.W(wtree.SliderKind, wtree.SliderProps{Min: 0, Max: 100, Step: 5, Value: 40}),
			wtree.W(wtree.RangeSliderKind, wtree.RangeSliderProps{Min: 0, Max: 10, Step: 1, First: 2, Second: 7}),
		).WithLayoutData(wtree.BandLeft),
		wtree.NewScroll(wtree.NewVBox(lines...)).WithKey("content"),
	)
}

func main() {
	log.SetFlags(0)
	configPath := flag.String("config", "", "toml config file, default settings are used if absent")
	size := flag.String("size", "800x600", "size of the window to lay out in, WxH")
	drawOps := flag.Bool("draw", false, "also print the paint operations")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	config := wtree.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = wtree.LoadConfig(*configPath)
		check(err, "loading config")
	}
	var p image.Point
	if _, err := fmt.Sscanf(*size, "%dx%d", &p.X, &p.Y); err != nil || p.X < 0 || p.Y < 0 {
		log.Fatalf("bad size %q, need WxH", *size)
	}

	dui := wtree.NewDUI(nil, config)
	defer dui.Close()
	if config.SettingsPath != "" {
		settings, err := wtree.OpenSettings(config.SettingsPath)
		check(err, "opening settings")
		dui.Settings = settings
	}

	stats := dui.Build(build("fast"))
	log.Printf("build: created %d, reused %d, destroyed %d\n", stats.Created, stats.Reused, stats.Destroyed)
	dui.Resize(p)
	rec := wtree.NewRecorder(image.Rectangle{image.ZP, p})
	dui.Render(rec)
	dui.Print()

	if *drawOps {
		for _, op := range rec.Ops {
			fmt.Println(op)
		}
	}
}
