package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"assetboard/internal/ingest"
	"assetboard/internal/models"
	"assetboard/internal/validator"
)

// source selects the holdings table a command reads: the built-in sample
// or the file named by the first argument.
type source struct {
	sample bool
}

func (s *source) setFlags(f *flag.FlagSet) {
	f.BoolVar(&s.sample, "sample", false, "use the built-in sample holdings instead of a file")
}

func (s *source) load(f *flag.FlagSet) ([]models.AssetRecord, error) {
	if s.sample {
		return ingest.Sample(), nil
	}
	if f.NArg() != 1 {
		return nil, errors.New("expected exactly one holdings file (or -sample)")
	}
	return ingest.ParseFile(f.Arg(0))
}

// view holds the flags shared by commands that present one investor.
type view struct {
	source
	investor string
	currency string
}

func (v *view) setFlags(f *flag.FlagSet) {
	v.source.setFlags(f)
	f.StringVar(&v.investor, "investor", "", "investor to report on (required)")
	f.StringVar(&v.currency, "currency", "KRW", "display currency (ISO 4217)")
}

func (v *view) validate() error {
	if v.investor == "" {
		return errors.New("-investor is required")
	}
	if !validator.IsCurrency(v.currency) {
		return fmt.Errorf("unknown currency %q", v.currency)
	}
	return nil
}

// printMarkdown renders md for the terminal, or prints it as is when the
// renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
