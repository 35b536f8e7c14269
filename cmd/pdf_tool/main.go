package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"pdf-api/internal/pdf"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pdf_tool render [-page N] [-scale S] [-out file.png] <file.pdf>")
	fmt.Fprintln(os.Stderr, "       pdf_tool text [-engine fitz|ledongthuc] <file.pdf>")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = render(os.Args[2:])
	case "text":
		err = text(os.Args[2:])
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func readDocument(fs *flag.FlagSet) ([]byte, error) {
	if fs.NArg() != 1 {
		usage()
	}
	return os.ReadFile(fs.Arg(0))
}

func render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	page := fs.Int("page", 1, "1-indexed page to render")
	scale := fs.Float64("scale", pdf.DefaultScale, "render scale, 1.0 is 72 dpi")
	out := fs.String("out", "", "output png path, defaults to <file>-<page>.png")
	fs.Parse(args) //nolint:errcheck

	document, err := readDocument(fs)
	if err != nil {
		return err
	}

	image, err := pdf.NewFitzRenderer().RenderPage(context.Background(), document, *page, *scale)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("%s-%d.png", strings.TrimSuffix(fs.Arg(0), ".pdf"), *page)
	}
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	fmt.Println("wrote", path)
	return nil
}

func text(args []string) error {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	engine := fs.String("engine", pdf.EngineFitz, "text extraction engine")
	fs.Parse(args) //nolint:errcheck

	document, err := readDocument(fs)
	if err != nil {
		return err
	}

	extractor, err := pdf.NewExtractor(*engine)
	if err != nil {
		return err
	}

	result, err := extractor.Extract(context.Background(), document)
	if err != nil {
		return err
	}

	fmt.Printf("pages: %d\n", result.NumPages)
	for key, value := range result.Info {
		fmt.Printf("%s: %v\n", key, value)
	}
	fmt.Println()
	fmt.Println(result.Text)
	return nil
}
