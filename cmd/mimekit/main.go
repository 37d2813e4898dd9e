package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mimekit/cmd/mimekit/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
