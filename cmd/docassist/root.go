package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	jsonOut    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "docassist",
		Short: "Summarize documents and convert PDFs to DOCX.",
		Long: `docassist extracts text from PDF, DOCX and TXT files, summarizes it with a
remote language model in English, Khmer or both, and converts PDFs into
editable DOCX files.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml (default ./config.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")

	rootCmd.AddCommand(newInfoCommand(opts))
	rootCmd.AddCommand(newExtractCommand(opts))
	rootCmd.AddCommand(newSummarizeCommand(opts))
	rootCmd.AddCommand(newKeyPointsCommand(opts))
	rootCmd.AddCommand(newConvertCommand(opts))
	rootCmd.AddCommand(newCleanupCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))

	return rootCmd
}
