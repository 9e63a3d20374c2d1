// Package main is the entry point for the ratingsim CLI tool, which
// simulates a rated player population and tracks how the rating systems
// respond to scripted skill changes.
package main

import "github.com/ldruskis/go-rating-sim/cmd"

func main() {
	cmd.Execute()
}
