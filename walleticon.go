// Package walleticon renders the wallet application icon set.
//
// The icons are drawn procedurally: a horizontal gradient on a padded square,
// with a stylized white wallet on top. See [Render] for the drawing steps and
// [Generate] for writing a whole set to disk.
package walleticon

import (
	"errors"
	"log"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("WALLETICON_DEBUG") != ""
}

// Errors
var (
	ErrNoIcons            = errors.New("walleticon: no icons")
	ErrIconTooLarge       = errors.New("walleticon: icon exceeds 256 pixels")
	ErrInvalidSupersample = errors.New("walleticon: supersample factor must be at least 1")
)

// DefaultSizes are the icon sizes generated when no sizes are configured.
var DefaultSizes = []int{16, 32, 48, 128}

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "public/icons"

func debugf(format string, v ...any) {
	if debug {
		log.Printf("walleticon: "+format, v...)
	}
}
