package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/oladipuporancho/bank-statement-json/internal/api"
	"github.com/oladipuporancho/bank-statement-json/internal/config"
	"github.com/oladipuporancho/bank-statement-json/internal/extractor"
	"github.com/oladipuporancho/bank-statement-json/internal/logger"
	"github.com/oladipuporancho/bank-statement-json/internal/parser"
)

func main() {
	serveFlag := flag.Bool("serve", false, "Start the HTTP API server")
	outputFlag := flag.String("output", "", "Output JSON file path (defaults to input filename with .json extension)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Statement PDF to JSON Converter

Reconstructs a structured ledger (account metadata, monthly totals and
individual transactions) from bank-statement PDFs.

Usage:
  bank-statement-json [flags] <input.pdf> [input2.pdf ...]
  bank-statement-json -serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a statement to JSON
  bank-statement-json statement.pdf

  # Custom output path
  bank-statement-json --output=ledger.json statement.pdf

  # Start the upload API (POST /api/pdf/upload, multipart field "pdf")
  bank-statement-json -serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("bank-statement-json v%s\n", api.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load configuration: %v\n", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if *serveFlag {
		serve(cfg, log)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	ext := parser.New(log)
	for _, inputPath := range flag.Args() {
		if err := processFile(ext, inputPath, *outputFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func serve(cfg *config.Config, log zerolog.Logger) {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadMB << 20,
	})

	h := &api.Handler{
		UploadDir: cfg.UploadDir,
		Log:       log,
		Extractor: parser.New(log),
	}
	h.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func processFile(ext *parser.Extractor, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	text, err := extractor.ReadText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	result := ext.Extract(text)
	if result.Error {
		return fmt.Errorf("%s", result.Message)
	}

	fmt.Printf("Processing: %s\n", inputPath)
	fmt.Printf("  Found %d transaction(s)\n", len(result.Transactions))
	if result.AccountInfo.AccountName != "" {
		fmt.Printf("  Account name: %s\n", result.AccountInfo.AccountName)
	}
	if result.AccountInfo.AccountNumber != "" {
		fmt.Printf("  Account number: %s\n", result.AccountInfo.AccountNumber)
	}
	if result.AccountInfo.StatementPeriod != "" {
		fmt.Printf("  Period: %s\n", result.AccountInfo.StatementPeriod)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
