// Command pixscale upscales pixel-art images from the command line.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/pixscale"
	"github.com/gogpu/pixscale/internal/dump"

	// Register the wgpu accelerator; frames fall back to the CPU kernel
	// when no GPU is available or -gpu is not set.
	_ "github.com/gogpu/pixscale/gpu"
)

func main() {
	var (
		input   = flag.String("in", "", "input image (PNG or JPEG)")
		output  = flag.String("out", "out.png", "output PNG file")
		scale   = flag.Int("scale", 0, "integer scale factor (overrides -width/-height)")
		width   = flag.Int("width", 0, "output width (0: derive from -scale or source)")
		height  = flag.Int("height", 0, "output height (0: derive from -scale or source)")
		filter  = flag.String("filter", "sharp", "scaling filter: sharp, nearest, linear")
		workers = flag.Int("workers", runtime.GOMAXPROCS(0), "CPU worker goroutines")
		useGPU  = flag.Bool("gpu", false, "scale on the GPU when available")
		rawDump = flag.String("dump", "", "also write the raw frame as a compressed dump")
		verbose = flag.Bool("v", false, "enable logging to stderr")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		pixscale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	src, err := pixscale.LoadImage(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	dstW, dstH := *width, *height
	if *scale > 0 {
		dstW = src.Width() * *scale
		dstH = src.Height() * *scale
	}
	if dstW == 0 {
		dstW = src.Width()
	}
	if dstH == 0 {
		dstH = src.Height()
	}

	opts := []pixscale.ScaleOption{
		pixscale.WithFilter(pixscale.ParseFilter(*filter)),
		pixscale.WithWorkers(*workers),
	}
	if !*useGPU {
		opts = append(opts, pixscale.WithoutAccelerator())
	}
	s := pixscale.New(opts...)
	out, err := s.Scale(src, dstW, dstH)
	if err != nil {
		log.Fatalf("Failed to scale: %v", err)
	}

	if err := out.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *rawDump != "" {
		f, err := os.Create(*rawDump)
		if err != nil {
			log.Fatalf("Failed to create dump: %v", err)
		}
		if err := dump.WriteFrame(f, out.Data(), out.Width(), out.Height()); err != nil {
			_ = f.Close()
			log.Fatalf("Failed to write dump: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close dump: %v", err)
		}
	}

	log.Printf("Scaled %s (%dx%d) to %s (%dx%d)\n",
		*input, src.Width(), src.Height(), *output, dstW, dstH)
}
