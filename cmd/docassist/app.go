package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/nguyentantai21042004/doc-assist/internal/config"
	"github.com/nguyentantai21042004/doc-assist/internal/converter"
	"github.com/nguyentantai21042004/doc-assist/internal/domain"
	"github.com/nguyentantai21042004/doc-assist/internal/extractor"
	"github.com/nguyentantai21042004/doc-assist/internal/filestore"
	"github.com/nguyentantai21042004/doc-assist/internal/logger"
	"github.com/nguyentantai21042004/doc-assist/internal/processor"
	"github.com/nguyentantai21042004/doc-assist/internal/summarizer"
	"github.com/spf13/afero"
)

const defaultConfigPath = "config.yaml"

// app holds the wired components for one CLI invocation.
type app struct {
	cfg       *config.Config
	log       logger.Logger
	extractor extractor.Extractor
	proc      processor.Processor
	out       io.Writer
	jsonOut   bool
}

func loadConfig(path string) (*config.Config, error) {
	config.LoadDotEnv(".env")

	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			cfg := &config.Config{}
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		path = defaultConfigPath
	}
	return config.Load(path)
}

func newApp(ctx context.Context, configPath string, jsonOut bool, out io.Writer) (*app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	store := filestore.New(afero.NewOsFs(), cfg.Paths.Upload, cfg.Paths.Output, log)
	if err := store.EnsureDirs(); err != nil {
		return nil, err
	}

	ex := extractor.New(log)
	deps := processor.Deps{
		Store:     store,
		Extractor: ex,
		Converter: converter.New(log),
	}

	sum, err := summarizer.New(ctx, cfg.AI, log)
	if err != nil {
		log.Debug(ctx, "Summarization unavailable: %v", err)
	} else {
		deps.Summarizer = sum
	}

	proc := processor.New(cfg, deps, log)

	// Best-effort purge of stale temporary files, once per invocation.
	proc.Cleanup(ctx)

	return &app{
		cfg:       cfg,
		log:       log,
		extractor: ex,
		proc:      proc,
		out:       out,
		jsonOut:   jsonOut,
	}, nil
}

// readUpload enforces the front-end limits and returns the file's name and bytes.
func (a *app) readUpload(path string) (string, []byte, error) {
	name := filepath.Base(path)
	if !a.cfg.IsAllowedExtension(filepath.Ext(name)) {
		return "", nil, domain.UnsupportedFormat(fmt.Sprintf("Unsupported file type: %s (allowed: %v)", filepath.Ext(name), a.cfg.Limits.AllowedExtensions), nil)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	if stat.Size() > a.cfg.Limits.MaxFileSize {
		return "", nil, domain.ValidationError(fmt.Sprintf("%s is %s, larger than the %s limit",
			name, humanize.IBytes(uint64(stat.Size())), humanize.IBytes(uint64(a.cfg.Limits.MaxFileSize))), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return name, data, nil
}

// loadSession builds a session from a file argument or pasted text.
func (a *app) loadSession(ctx context.Context, args []string, text string) (domain.Session, error) {
	sess := domain.NewSession()

	switch {
	case text == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return sess, fmt.Errorf("read stdin: %w", err)
		}
		return a.proc.UseText(sess, string(data)), nil
	case text != "":
		return a.proc.UseText(sess, text), nil
	case len(args) == 1:
		name, data, err := a.readUpload(args[0])
		if err != nil {
			return sess, err
		}
		return a.proc.LoadDocument(logger.WithSession(ctx, sess.ID), sess, name, data)
	default:
		return sess, errors.New("provide a document path or --text")
	}
}
