// Package colorconv converts colors between the CMYK model, 8-bit RGB
// channels, and hexadecimal strings and integers.
//
// Two error policies apply. Channel values are clamped silently: a CMYK
// percentage above 100 becomes 100 and a fraction outside [0, 1] is pulled
// back into range. Hex input is validated: a string that is not "#RRGGBB"
// returns a *FormatError and an integer above 0xFFFFFF returns a *RangeError.
//
// All functions are pure and all types are immutable values, so they can be
// shared between goroutines freely.
//
// Basic usage:
//
//	cmyk := colorconv.NewCMYK(0, 100, 100, 0)
//	fmt.Println(cmyk.Hex()) // #FF0000
//
//	hex, err := colorconv.ParseHex("#00FF00")
//	if err != nil {
//		return err
//	}
//	fmt.Println(hex.CMYK()) // (100, 0, 100, 0)
package colorconv
