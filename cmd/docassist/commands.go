package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
	"github.com/nguyentantai21042004/doc-assist/internal/watcher"
	"github.com/spf13/cobra"
)

func newInfoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show size, type and page count of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			info, err := a.extractor.DocumentInfo(cmd.Context(), args[0], filepath.Ext(args[0]))
			if err != nil {
				return err
			}
			return a.printInfo(info)
		},
	}
}

func newExtractCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the plain text of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			sess, err := a.loadSession(cmd.Context(), args, "")
			if err != nil {
				return err
			}
			return a.printText(sess)
		},
	}
}

func newSummarizeCommand(opts *rootOptions) *cobra.Command {
	var (
		text      string
		style     string
		language  string
		maxTokens int
	)

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize a document or pasted text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := parseLanguage(language)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			sess, err := a.loadSession(cmd.Context(), args, text)
			if err != nil {
				return err
			}

			if style == "" {
				style = a.cfg.Summary.Style
			}
			if lang == "" {
				lang = domain.Language(a.cfg.Summary.Language)
			}

			ctx := logger.WithSession(cmd.Context(), sess.ID)
			_, result := a.proc.Summarize(ctx, sess, summarizer.Options{
				Style:     domain.SummaryStyle(style),
				Language:  lang,
				MaxTokens: maxTokens,
			})
			if err := a.printSummary(result); err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", `text to summarize instead of a file ("-" reads stdin)`)
	cmd.Flags().StringVarP(&style, "style", "s", "", "brief, comprehensive, bullet_points or executive")
	cmd.Flags().StringVarP(&language, "language", "l", "", "output language: en, km or both")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "maximum response tokens (default from config)")
	return cmd
}

func newKeyPointsCommand(opts *rootOptions) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "keypoints [file]",
		Short: "Extract the key points of a document or pasted text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			sess, err := a.loadSession(cmd.Context(), args, text)
			if err != nil {
				return err
			}

			result := a.proc.KeyPoints(logger.WithSession(cmd.Context(), sess.ID), sess)
			if err := a.printKeyPoints(result); err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", `text to analyze instead of a file ("-" reads stdin)`)
	return cmd
}

func newConvertCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file.pdf>",
		Short: "Convert a PDF into an editable DOCX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ext := filepath.Ext(args[0]); ext != ".pdf" && ext != ".PDF" {
				return domain.UnsupportedFormat("only PDF files can be converted, got "+ext, nil)
			}
			a, err := newApp(cmd.Context(), opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			name, data, err := a.readUpload(args[0])
			if err != nil {
				return err
			}

			sess := domain.NewSession()
			_, result := a.proc.ConvertPDF(logger.WithSession(cmd.Context(), sess.ID), sess, name, data)
			if err := a.printConversion(result); err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Message)
			}
			return nil
		},
	}
}

func newCleanupCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove stale temporary uploads and outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// newApp already runs one cleanup pass.
			a, err := newApp(cmd.Context(), opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Removed files older than %s from %s and %s\n",
				a.cfg.Cleanup.MaxAge, a.cfg.Paths.Upload, a.cfg.Paths.Output)
			return nil
		},
	}
}

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Summarize every document dropped into the inbox directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts.configPath, opts.jsonOut, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := ensureDirectories(a.cfg.Paths.Inbox, a.cfg.Paths.Archived, a.cfg.Paths.Reports); err != nil {
				return err
			}

			w, err := watcher.New(a.cfg.Paths.Inbox, a.cfg.Limits.AllowedExtensions, a.proc.Process, a.log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Inbox: %s", a.cfg.Paths.Inbox)
			a.log.Info(ctx, "Reports: %s", a.cfg.Paths.Reports)
			a.log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info(ctx, "Watcher stopped")
			return nil
		},
	}
}

func parseLanguage(s string) (domain.Language, error) {
	switch lang := domain.Language(s); lang {
	case "", domain.LanguageEnglish, domain.LanguageKhmer, domain.LanguageBoth:
		return lang, nil
	default:
		return "", fmt.Errorf("unknown language %q: use en, km or both", s)
	}
}
