// Package main is the docugenius command line tool. It analyzes a document
// with a Gemini model and prints the recovered analysis result as JSON, or
// re-runs the recovery pipeline over a saved raw model response.
//
// Requires the GEMINI_API_KEY environment variable unless -response is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/parm9695/DocuGenius/core/analysis"
	"github.com/parm9695/DocuGenius/core/analyzer"
	"github.com/parm9695/DocuGenius/core/extract"
	"github.com/parm9695/DocuGenius/internal/utils"
	"github.com/parm9695/DocuGenius/providers/ai/gemini"
	"github.com/parm9695/DocuGenius/providers/source"
)

// Exit codes, so scripts can tell recovery failures from everything else.
const (
	exitUsage         = 1
	exitEmptyResponse = 2
	exitUnrecoverable = 3
	exitError         = 4
)

func main() {
	var (
		filePath     = flag.String("file", "", "document to analyze")
		responsePath = flag.String("response", "", "saved raw model response to reparse instead of calling the model")
		model        = flag.String("model", "", "model name (defaults to the provider's default)")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if (*filePath == "") == (*responsePath == "") {
		fmt.Fprintln(os.Stderr, "usage: docugenius -file <document> | -response <raw-response-file>")
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	var result *analysis.Result
	var err error
	if *responsePath != "" {
		result, err = reparse(*responsePath, logger)
	} else {
		result, err = analyze(*filePath, *model, logger)
	}
	if err != nil {
		logger.Error("analysis failed", "error", err)
		switch {
		case errors.Is(err, extract.ErrEmptyResponse):
			os.Exit(exitEmptyResponse)
		case errors.Is(err, extract.ErrUnrecoverable):
			os.Exit(exitUnrecoverable)
		default:
			os.Exit(exitError)
		}
	}

	fmt.Println(utils.JSONStringIndent(result))
}

func analyze(path, model string, logger *slog.Logger) (*analysis.Result, error) {
	doc, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("document loaded", "name", doc.Name, "type", doc.Type, "size", doc.Size)

	a := analyzer.New(gemini.New(),
		analyzer.WithModel(model),
		analyzer.WithLogger(logger),
	)
	return a.Analyze(context.Background(), doc)
}

func reparse(path string, logger *slog.Logger) (*analysis.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("reparsing saved response", "path", path, "size", len(raw))

	pipeline := extract.New(extract.WithLogger(logger))
	return pipeline.Run(string(raw))
}
