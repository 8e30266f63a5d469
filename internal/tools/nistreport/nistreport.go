// Package nistreport runs the NIST statistical tests over labeled bit
// sequences and writes a plain-text report.
package nistreport

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/message"

	"github.com/louisbranch/bitseq/internal/bitseq"
	"github.com/louisbranch/bitseq/internal/nist"
	platformcmd "github.com/louisbranch/bitseq/internal/platform/cmd"
	apperrors "github.com/louisbranch/bitseq/internal/platform/errors"
	"github.com/louisbranch/bitseq/internal/platform/i18n"
	"github.com/louisbranch/bitseq/internal/platform/otel"
)

// GeneratedLabel names the sequence drawn when no input file is given.
const GeneratedLabel = "generated"

const tracerName = "github.com/louisbranch/bitseq/internal/tools/nistreport"

// Config holds configuration for a report run.
type Config struct {
	// Input is a JSON object mapping labels to bit strings. Empty means a
	// fresh sequence is generated.
	Input string `env:"NIST_INPUT"`
	// Output is the report path. Empty means the report goes to the run's
	// writer.
	Output string `env:"NIST_OUTPUT"`
	// Lang selects the report locale.
	Lang string `env:"NIST_LANG" envDefault:"en"`
}

// ParseConfig reads BITSEQ_NIST_* variables and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Input, "input", "", "JSON file mapping labels to bit sequences (default: generate one)")
	fs.StringVar(&cfg.Output, "output", "", "report file (default: stdout)")
	fs.StringVar(&cfg.Lang, "lang", "", "report locale (en, pt-BR)")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run evaluates the configured sequences and writes the report.
// A nil entropy reader falls back to crypto/rand.
func Run(ctx context.Context, cfg Config, out io.Writer, entropy io.Reader) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "nist.report")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if cfg.Output == "" && out == nil {
		return errors.New("output is required")
	}

	tag, ok := i18n.ResolveTag(cfg.Lang)
	if !ok && strings.TrimSpace(cfg.Lang) != "" {
		log.Printf("unsupported locale %q, using %s", cfg.Lang, tag)
	}
	span.SetAttributes(attribute.String("report.locale", tag.String()))

	sequences, err := loadSequences(cfg.Input, entropy)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(sequences))
	for label := range sequences {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	reports := make([]nist.Report, 0, len(labels))
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		report, err := evaluate(ctx, label, sequences[label])
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	text := Render(i18n.Printer(tag), reports)
	if cfg.Output == "" {
		_, err := io.WriteString(out, text)
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Printf("report written to %s", cfg.Output)
	return nil
}

// Render formats reports with the given printer, one block per sequence.
func Render(p *message.Printer, reports []nist.Report) string {
	var b strings.Builder
	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Sprintf(i18n.KeyReportSequence, report.Label, report.Sequence.Len()))
		b.WriteString("\n")
		for _, result := range report.Results {
			verdict := p.Sprintf(i18n.KeyReportFail)
			if result.Passed() {
				verdict = p.Sprintf(i18n.KeyReportPass)
			}
			b.WriteString(p.Sprintf(i18n.KeyReportResult, result.Name, result.PValue, verdict))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func evaluate(ctx context.Context, label, raw string) (nist.Report, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "nist.evaluate")
	defer span.End()
	span.SetAttributes(
		attribute.String("sequence.label", label),
		attribute.Int("sequence.bits", len(raw)),
	)

	seq, err := bitseq.Parse(raw)
	if err != nil {
		err = apperrors.WrapWithMetadata(apperrors.CodeReportInputInvalid, fmt.Sprintf("sequence %q", label),
			map[string]string{"Label": label}, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nist.Report{}, err
	}

	report, err := nist.Evaluate(label, seq)
	if err != nil {
		err = fmt.Errorf("evaluate %q: %w", label, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nist.Report{}, err
	}
	for _, result := range report.Results {
		span.SetAttributes(attribute.Float64("nist."+result.Name+".p_value", result.PValue))
	}
	return report, nil
}

func loadSequences(path string, entropy io.Reader) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		seq, err := bitseq.Draw(entropy, bitseq.Length)
		if err != nil {
			return nil, fmt.Errorf("draw sequence: %w", err)
		}
		return map[string]string{GeneratedLabel: seq.String()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequences: %w", err)
	}
	var sequences map[string]string
	if err := json.Unmarshal(data, &sequences); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeReportInputInvalid, "decode sequences "+path, err)
	}
	if len(sequences) == 0 {
		return nil, apperrors.New(apperrors.CodeReportInputInvalid, "no sequences in "+path)
	}
	return sequences, nil
}
