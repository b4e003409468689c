package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/formalverse/sequin"
	"github.com/formalverse/sequin/internal/logic"
)

var infoCmd = &cobra.Command{
	Use:   "info [formula]",
	Short: "Parse a prefix-notation formula and report its variables and symbols",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide a formula in prefix notation")
			os.Exit(1)
		}

		input := strings.Join(args, " ")
		f, err := sequin.ParseFormula(input)
		if err != nil {
			logger.Error("Error parsing formula", zap.Error(err))
			os.Exit(1)
		}

		fmt.Printf("formula:    %s\n", f)
		fmt.Printf("free vars:  %s\n", joinNames(logic.FreeVars(f).Names()))
		fmt.Printf("bound vars: %s\n", joinNames(logic.BoundVars(f).Names()))
		fmt.Printf("functions:  %s\n", joinSymbols(logic.FuncSymbols(f).Sorted()))
		fmt.Printf("predicates: %s\n", joinSymbols(logic.PredSymbols(f).Sorted()))
	},
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func joinSymbols(symbols []logic.NonLogicalSymbol) string {
	if len(symbols) == 0 {
		return "(none)"
	}
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
