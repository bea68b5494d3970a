// Command retroimg converts standard images into the packed 16-color
// sprite format and back.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/csboard/retropix/convert"
	"github.com/csboard/retropix/sprite"
)

func main() {
	app := cli.NewApp()

	app.Name = "retroimg"
	app.Usage = "16-color packed sprite conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	convertFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "palette",
			Usage: "built-in palette to match against (classic, grayscale, sepia); default derives one",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "resize to this width before converting",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "resize to this height before converting",
		},
		&cli.IntFlag{
			Name:  "alpha",
			Value: 128,
			Usage: "alpha threshold below which pixels become transparent (0 disables)",
		},
		&cli.BoolFlag{
			Name:  "dither",
			Usage: "apply Floyd-Steinberg dithering",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output path",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image to a packed sprite stream",
			ArgsUsage: "FILE",
			Flags:     convertFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				img, err := loadSprite(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				out := c.String("output")
				if out == "" {
					out = replaceExt(c.Args().First(), ".rpx")
				}
				f, err := os.Create(out)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := sprite.Encode(f, img); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "gosrc",
			Usage:     "Convert an image to a Go source asset file",
			ArgsUsage: "FILE",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  "pkg",
					Value: "assets",
					Usage: "package name for the generated file",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "variable name (default derived from the file name)",
				},
			}, convertFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				img, err := loadSprite(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				name := c.String("name")
				if name == "" {
					name = varName(c.Args().First())
				}

				out := c.String("output")
				if out == "" {
					out = replaceExt(c.Args().First(), ".go")
				}
				f, err := os.Create(out)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := convert.GoAsset(f, c.String("pkg"), name, img); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Decode a sprite stream back to PNG",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output path",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				img, err := sprite.Decode(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				out := c.String("output")
				if out == "" {
					out = replaceExt(c.Args().First(), ".png")
				}
				o, err := os.Create(out)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer o.Close()

				if err := png.Encode(o, convert.ToImage(img)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Print the dimensions and palette of a sprite stream",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				w, h, pal, err := sprite.DecodeConfig(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Printf("%s: %dx%d, %d bytes packed\n",
					c.Args().First(), w, h, (w*h+1)/2)
				for i := 0; i < sprite.PaletteSize; i++ {
					fmt.Printf("  %2d: 0x%04x\n", i, pal.ColorAt(uint8(i)))
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSprite decodes the command's file argument and converts it with the
// command's flags.
func loadSprite(c *cli.Context) (*sprite.Image, error) {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(c.Args().First())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.Args().First(), err)
	}
	logger.Info("decoded", "file", c.Args().First(), "format", format)

	return convert.ToSprite(logger, src, convert.Options{
		Palette:        c.String("palette"),
		Width:          c.Int("width"),
		Height:         c.Int("height"),
		AlphaThreshold: uint8(c.Int("alpha")),
		Dither:         c.Bool("dither"),
	})
}

// replaceExt swaps a path's extension.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// varName derives a Go identifier from a file name.
func varName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	upper := true
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if upper {
				r = []rune(strings.ToUpper(string(r)))[0]
				upper = false
			}
			b.WriteRune(r)
		default:
			upper = true
		}
	}
	s := b.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return "Sprite" + s
	}
	return s
}
