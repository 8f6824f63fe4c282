package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/ship.svg
var shipSVGData []byte

// loadShipSprite rasterizes the embedded ship SVG into an ebiten image
func loadShipSprite(size int) (*ebiten.Image, error) {
	shipPNG, err := svgToPNG(shipSVGData, size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize ship sprite: %w", err)
	}

	// Optionally save PNG for debugging
	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(shipPNG, "debug_ship.png")
	}

	return ebiten.NewImageFromImage(shipPNG), nil
}

// svgToPNG converts SVG data to a PNG image
func svgToPNG(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG saves a PNG image for debugging purposes
func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
