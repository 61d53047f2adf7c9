package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	mvmnt "github.com/Maokus/MVMNT-sub002"
	"github.com/Maokus/MVMNT-sub002/graphic"
)

// AppName is the app name
const AppName = "mvmnt-sample"

// AppDesc is the app description
const AppDesc = "samples analyzed audio features and draws them in the terminal"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := mvmnt.NewZeroConfig()

	raw := doFlags(&cfg)

	chk(cfg.Validate(), "invalid config")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if raw {
		cfg.Output = NewWriter(cfg.Width)
		chk(mvmnt.Run(ctx, &cfg), "failed to run")
		return
	}

	display, err := graphic.NewDisplay()
	chk(err, "failed to open display")
	defer display.Close()

	display.SetAutoScale(cfg.Mode == mvmnt.ModeRMS)

	cfg.Output = display

	runCtx := display.Start(ctx)
	defer display.Stop()

	chk(mvmnt.Run(runCtx, &cfg), "failed to run")
}

func doFlags(cfg *mvmnt.Config) bool {
	raw := false

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	parser.AddPositionalValue(&cfg.File, "file", 1, true, "audio file (wav, mp3 or ogg)")

	parser.String(&cfg.Mode, "m", "mode", "display mode (wave, rms, spectro)")
	parser.String(&cfg.Channel, "c", "channel", "channel selector (index or left/right/mid/side)")
	parser.Bool(&cfg.Stereo, "s", "stereo", "mirror a second channel below the first")
	parser.Int(&cfg.Width, "w", "width", "series width when not drawing to a screen")
	parser.Int(&cfg.Bins, "b", "bins", "spectrogram bin count (0 follows width)")
	parser.Float64(&cfg.WindowSeconds, "ws", "window", "waveform window in seconds")
	parser.Int(&cfg.FrameRate, "f", "fps", "frames per second")
	parser.Float64(&cfg.Gain, "g", "gain", "amplitude gain")
	parser.Float64(&cfg.Density, "dn", "density", "detail density in (0, 1]")
	parser.Float64(&cfg.DampRadius, "dr", "damp", "smoothing radius in samples")
	parser.String(&cfg.Scale, "sc", "scale", "frequency scale (linear, log, mel)")
	parser.Float64(&cfg.MinFrequency, "lf", "min-freq", "lowest displayed frequency")
	parser.Float64(&cfg.MaxFrequency, "hf", "max-freq", "highest displayed frequency (0 = nyquist)")
	parser.Float64(&cfg.MinDb, "ld", "min-db", "bottom of the dB display range")
	parser.Float64(&cfg.MaxDb, "hd", "max-db", "top of the dB display range")
	parser.Int(&cfg.WindowSize, "n", "samples", "analysis window size")
	parser.Int(&cfg.HopSize, "hp", "hop", "analysis hop size")
	parser.Bool(&raw, "r", "raw", "print numbers instead of drawing")

	chk(parser.Parse(), "failed to parse arguments")

	return raw
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
