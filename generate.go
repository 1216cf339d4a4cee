package walleticon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Output file names besides the per-size icons.
const (
	SheetName = "preview.png"
	ICOName   = "favicon.ico"
)

// Options configure [Generate].
type Options struct {
	// Dir is the output directory, created if missing. Defaults to [DefaultDir].
	Dir string

	// Sizes to render. Defaults to [DefaultSizes].
	Sizes []int

	// Supersample renders each icon this many times larger and scales it down.
	// Zero and one disable supersampling.
	Supersample int

	// Sheet also writes a preview sheet of all icons.
	Sheet bool

	// ICO also writes a favicon bundling all icons.
	ICO bool

	// Out receives one line per written file. Defaults to [io.Discard].
	Out io.Writer
}

// IconName returns the file name of the icon of the given size.
func IconName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate renders every configured size and writes it as a PNG file, returning the
// paths written. The first file system error aborts the run.
func Generate(opts Options) ([]string, error) {
	var (
		dir   = opts.Dir
		sizes = opts.Sizes
		out   = opts.Out
	)
	if dir == "" {
		dir = DefaultDir
	}
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if out == nil {
		out = io.Discard
	}
	if opts.Supersample < 0 {
		return nil, ErrInvalidSupersample
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("walleticon: create %s: %w", dir, err)
	}

	var (
		paths []string
		icons = make([]image.Image, 0, len(sizes))
	)
	for _, size := range sizes {
		icon := RenderSupersampled(size, opts.Supersample)
		path := filepath.Join(dir, IconName(size))
		if err := writeFile(path, func(w io.Writer) error {
			return png.Encode(w, icon)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		icons = append(icons, icon)
		fmt.Fprintf(out, "✓ created %s\n", IconName(size))
	}

	if opts.Sheet {
		path := filepath.Join(dir, SheetName)
		if err := writeFile(path, func(w io.Writer) error {
			return png.Encode(w, Sheet(icons))
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		fmt.Fprintf(out, "✓ created %s\n", SheetName)
	}

	if opts.ICO {
		path := filepath.Join(dir, ICOName)
		if err := writeFile(path, func(w io.Writer) error {
			return EncodeICO(w, icons)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		fmt.Fprintf(out, "✓ created %s\n", ICOName)
	}

	fmt.Fprintf(out, "\nall %d PNG icons created in %s\n", len(sizes), dir)
	return paths, nil
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("walleticon: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("walleticon: close %s: %w", path, cerr)
		}
	}()

	if err = encode(f); err != nil {
		return fmt.Errorf("walleticon: write %s: %w", path, err)
	}
	debugf("wrote %s", path)
	return nil
}
