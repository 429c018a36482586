// Command solartime prints sunrise, sunset, twilight and solar midnight for a
// place, classifies the sun state at an instant, and runs a live sun clock.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
