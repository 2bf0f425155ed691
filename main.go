package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gopxl/mainthread/v2"

	"gohalo/chroma"
	"gohalo/commandline"
	"gohalo/conlog"
	"gohalo/filesystem"
	"gohalo/pic"
	"gohalo/surface"
	"gohalo/window"
)

func main() {
	flag.Parse()
	conlog.SetPrintf(func(format string, v ...interface{}) {
		fmt.Printf(format, v...)
	})
	if commandline.Verbose() {
		conlog.SetDebugPrintf(log.Printf)
	}
	mainthread.Run(run)
}

func run() {
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: gohalo [options] image\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	name := flag.Arg(0)
	s, err := load(name)
	if err != nil {
		log.Fatalf("load %s: %v", name, err)
	}
	bg, err := surface.ParseColor(commandline.Background())
	if err != nil {
		log.Fatal(err)
	}
	chroma.Apply(s, bg, commandline.Frames(), commandline.Frame(),
		commandline.Halo(), commandline.Opacity())

	out := commandline.Output()
	if out == "" {
		out = filesystem.StripExt(name) + "_keyed.png"
	}
	if err := write(out, s); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	conlog.Printf("wrote %s\n", out)

	if commandline.Preview() {
		if err := window.Show(name, s, commandline.Scale()); err != nil {
			log.Fatalf("preview: %v", err)
		}
	}
}

func load(name string) (surface.Pixels, error) {
	s, err := func() (surface.Pixels, error) {
		if dir := commandline.BaseDir(); dir != "" {
			if err := filesystem.UseBaseDir(dir); err != nil {
				return nil, err
			}
			return pic.Load(name)
		}
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return pic.Decode(f, name)
	}()
	if err != nil {
		return nil, err
	}
	// indexed sources without a transparent index cannot hold keyed pixels
	return pic.Keyable(s), nil
}

func write(name string, s surface.Pixels) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return pic.WritePNG(f, s)
}
