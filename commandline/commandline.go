package commandline

import (
	"flag"
)

var (
	background string
	halo       int
	opacity    int
	frames     int
	frame      int
	preview    bool
	scale      int
	verbose    bool
	basedir    string
	output     string
)

func init() {
	flag.StringVar(&background, "background", "#000000", "background color to key out, #rrggbb")
	flag.StringVar(&background, "bg", "#000000", "background color to key out, #rrggbb")

	flag.IntVar(&halo, "halo", 0, "halo width in pixels, 0 disables the halo")
	flag.IntVar(&opacity, "opacity", 0, "halo opacity step")
	flag.IntVar(&frames, "frames", 1, "frame strips stacked in the image")
	flag.IntVar(&frame, "frame", 0, "frame strip to process")
	flag.IntVar(&scale, "scale", 1, "preview window scale factor")

	flag.BoolVar(&preview, "preview", false, "show the result in a window")
	flag.BoolVar(&verbose, "verbose", false, "print asset resolution details")
	flag.BoolVar(&verbose, "v", false, "print asset resolution details")

	flag.StringVar(&basedir, "basedir", "", "asset directory, pak archives inside are searched")
	flag.StringVar(&output, "o", "", "output png, defaults to <input>_keyed.png")
}

func Background() string { return background }
func Halo() int          { return halo }
func Opacity() int       { return opacity }
func Frames() int        { return frames }
func Frame() int         { return frame }
func Preview() bool      { return preview }
func Scale() int         { return scale }
func Verbose() bool      { return verbose }
func BaseDir() string    { return basedir }
func Output() string     { return output }
