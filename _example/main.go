package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jkbrsn/colorconv"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatalf("Usage: go run main.go #RRGGBB")
	}

	// Convert with the value types and their constructors
	hex, err := colorconv.ParseHex(args[1])
	if err != nil {
		log.Fatalf("Failed to parse color: %v", err)
	}
	cmyk := hex.CMYK()
	fmt.Printf("Basic example\nHex: %s\nCMYK: %s\nBack to hex: %s\n\n", hex, cmyk, cmyk.Hex())

	// Convert with the plain channel functions
	r, g, b := hex.RGB()
	c, m, y, k := colorconv.RGBToCMYK(r, g, b)
	fr, fg, fb := colorconv.CMYKToRGBFraction(cmyk.Fractions())
	fmt.Printf("Channel example\nCMYK: %d %d %d %d\nRGB fractions: %.2f %.2f %.2f\n\n",
		c, m, y, k, fr, fg, fb)

	// Print the detailed form of both colors
	fmt.Printf("Detailed example\n%#v\n\n%#v\n", hex, cmyk)
}
