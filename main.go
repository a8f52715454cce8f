package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/view-animation/internal/asset"
	"github.com/iburimskiy/view-animation/internal/config"
	"github.com/iburimskiy/view-animation/internal/game"
	"github.com/ncruces/zenity"
)

func main() {
	log.Printf("Activating application.")

	img, err := asset.Load(config.ImagePath)
	if err != nil {
		fatal(loadFailureMessage(config.ImagePath, err))
	}
	log.Printf("Loaded %s image %s (%dx%d)", img.Format, img.Path, img.Width, img.Height)

	seed := uint64(time.Now().UnixNano())
	g, err := game.New(img, rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		fatal(err.Error())
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadFailureMessage(path string, err error) string {
	return fmt.Sprintf("Failed to load image. Ensure the file path '%s' is correct: %v", path, err)
}

// fatal reports msg on stderr and in a dialog, then exits with status 1.
func fatal(msg string) {
	log.Print(msg)
	_ = zenity.Error(msg, zenity.Title(config.WindowTitle), zenity.ErrorIcon)
	os.Exit(1)
}
