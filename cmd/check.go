package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/formalverse/sequin"
	"github.com/formalverse/sequin/formatter"
	"github.com/formalverse/sequin/internal"
	tt "github.com/formalverse/sequin/internal/types"
)

var (
	checkJSONOutput bool
	checkOutPath    string
	watchMode       bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check every inference of the given proof files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide proof file or directory paths")
			os.Exit(1)
		}

		engine := sequin.New()

		if watchMode {
			runWatchMode(engine, args)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		issues, err := sequin.ProcessFiles(ctx, logger, engine, args, sequin.ProcessFile)
		if err != nil {
			logger.Error("Error processing proof files", zap.Error(err))
			os.Exit(1)
		}

		printIssues(issues, checkJSONOutput, checkOutPath)

		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output issues in JSON format")
	checkCmd.Flags().StringVarP(&checkOutPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-check proof files whenever they change")
}

func runWatchMode(engine *internal.Engine, paths []string) {
	watcher, err := internal.NewWatcher(engine, paths)
	if err != nil {
		logger.Error("Error creating watcher", zap.Error(err))
		os.Exit(1)
	}
	if err := watcher.Start(); err != nil {
		logger.Error("Error starting watcher", zap.Error(err))
		os.Exit(1)
	}
	defer watcher.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
}

func printIssues(issues []tt.Issue, isJSON bool, jsonOutput string) {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if !isJSON {
		for _, filename := range sortedFiles {
			fmt.Println(formatter.FormatIssues(issuesByFile[filename]))
		}
		return
	}

	d, err := json.Marshal(issuesByFile)
	if err != nil {
		logger.Error("Error marshalling issues to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
