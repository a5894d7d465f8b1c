package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceRegs/internal/config"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/generate"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/model"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/naming"
)

var (
	genFormat     string
	genOut        string
	genQuery      string
	genWatch      bool
	genNamingFile string
	genNoValidate bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <project-file>",
	Short: "Build the generation model of a register description",
	Long: `Validate and resolve a register description and print the generation model:
resolved addresses and bus widths, protocol ports, record elements and a
unique VHDL identifier for every artifact.

Examples:
  regs generate project.json
  regs generate project.yaml --format yaml --out model.yaml
  regs generate project.json --query '.interfaces[].portNames'
  regs generate project.json --naming naming.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "",
		"output format: json or yaml (default from config, json)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "",
		"write the model to this file instead of stdout")
	generateCmd.Flags().StringVarP(&genQuery, "query", "q", "",
		"jq expression applied to the model before printing")
	generateCmd.Flags().BoolVarP(&genWatch, "watch", "w", false,
		"rebuild whenever the project file changes")
	generateCmd.Flags().StringVar(&genNamingFile, "naming", "",
		"naming settings file (overrides the config)")
	generateCmd.Flags().BoolVar(&genNoValidate, "no-validate", false,
		"skip the schema check of the source document")
}

// generation holds everything one build needs besides the project file.
type generation struct {
	settings *naming.Settings
	format   string
	out      string
	query    *gojq.Query
	validate bool
}

func runGenerate(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := loadConfig(source)
	if err != nil {
		return err
	}
	g, err := newGeneration(cfg)
	if err != nil {
		return err
	}

	if err := g.run(source); err != nil {
		if !genWatch {
			return err
		}
		fmt.Fprintln(os.Stderr, err)
	}
	if !genWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return g.watch(ctx, source)
}

func newGeneration(cfg *config.Config) (*generation, error) {
	g := &generation{
		format:   strings.ToLower(genFormat),
		validate: cfg.ValidateSources() && !genNoValidate,
		out:      genOut,
	}
	if g.format == "" {
		g.format = cfg.Output.Format
	}
	if g.format != "json" && g.format != "yaml" {
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", g.format)
	}
	if g.out == "" && cfg.Output.Dir != "" {
		g.out = cfg.Resolve(cfg.Output.Dir)
	}

	var err error
	if genNamingFile != "" {
		g.settings, err = naming.LoadFile(genNamingFile)
	} else {
		g.settings, err = cfg.NamingSettings()
	}
	if err != nil {
		return nil, err
	}
	if unknown := g.settings.Unknown(); len(unknown) > 0 {
		log.Printf("ignoring unknown naming keys: %v", unknown)
	}

	if genQuery != "" {
		g.query, err = gojq.Parse(genQuery)
		if err != nil {
			return nil, fmt.Errorf("invalid query: %w", err)
		}
	}
	return g, nil
}

// build reads, validates and resolves the project file.
func (g *generation) build(source string) (*generate.Model, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	format := model.FormatOf(source)

	if g.validate {
		v, err := model.NewValidator()
		if err != nil {
			return nil, err
		}
		if err := v.ValidateDocument(data, format); err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		log.Printf("%s matches the schema", source)
	}

	p, err := model.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	m, err := generate.Build(p, g.settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	log.Printf("built %d interface(s) of %s", len(m.Interfaces), m.Project)
	return m, nil
}

func (g *generation) run(source string) error {
	m, err := g.build(source)
	if err != nil {
		return err
	}

	var out []byte
	if g.query != nil {
		out, err = g.runQuery(m)
	} else {
		out, err = encode(m, g.format)
	}
	if err != nil {
		return err
	}

	if g.out == "" {
		fmt.Print(string(out))
		return nil
	}
	if info, err := os.Stat(g.out); err == nil && info.IsDir() {
		g.out = filepath.Join(g.out, m.Project+"."+g.format)
	}
	if err := os.WriteFile(g.out, out, 0644); err != nil {
		return fmt.Errorf("writing model: %w", err)
	}
	log.Printf("wrote %s", g.out)
	return nil
}

// runQuery evaluates the jq expression over the JSON form of m and encodes
// every result.
func (g *generation) runQuery(m *generate.Model) ([]byte, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	var sb strings.Builder
	iter := g.query.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("query: %w", err)
		}
		out, err := encode(v, g.format)
		if err != nil {
			return nil, err
		}
		sb.Write(out)
	}
	return []byte(sb.String()), nil
}

func encode(v any, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(v)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// watch rebuilds on every change of source until ctx is done. Builds run one
// after another on this goroutine. The directory is watched rather than the
// file so that editors replacing the file are noticed.
func (g *generation) watch(ctx context.Context, source string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(source)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", source, err)
	}
	log.Printf("watching %s", source)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Printf("%s changed, rebuilding", source)
			if err := g.run(source); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
