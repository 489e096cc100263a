package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-netup",
	Short: "golang-netup brings network interfaces up and checks connectivity",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
