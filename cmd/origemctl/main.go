package main

import (
	"os"

	"github.com/origem/origem-api/config"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd(config.LoadUnvalidated)
	root.SetOut(os.Stdout)
	cobra.CheckErr(root.Execute())
}
