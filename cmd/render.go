package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/formalverse/sequin"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Lay out a proof file as an ASCII diagram",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one proof file path")
			os.Exit(1)
		}

		diagram, err := sequin.RenderFile(args[0])
		if err != nil {
			logger.Error("Error rendering proof file", zap.String("file", args[0]), zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(diagram)
	},
}
