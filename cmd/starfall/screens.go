package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/screen"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the screens",
	Long:  `Shows every screen id. Any of them can be used with 'starfall play --start'.`,
	Args:  cobra.NoArgs,
	Run:   runScreens,
}

func runScreens(_ *cobra.Command, _ []string) {
	fmt.Println("Screens:")
	fmt.Println()
	for _, id := range screen.AllIDs() {
		fmt.Printf("  %s\n", id)
	}
	fmt.Println()
	fmt.Println("Run 'starfall play --start <id>' to open one first.")
}
