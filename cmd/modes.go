package cmd

import (
	"fmt"

	"github.com/jsphweid/modeviz/mode"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modesCmd)
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Lists the modes",
	Long:  `Lists every mode with its intervals and description`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range mode.All() {
			fmt.Printf("%-24s %v\n", m.Name, m.Intervals)
			fmt.Printf("%-24s %s\n", "", m.Description)
		}
	},
}
