package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olidan/minesweeper/internal/platform/term"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the how-to-play text",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(term.HowToPlay)
	},
}
