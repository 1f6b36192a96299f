package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/service"
	"github.com/Jamolkhon5/blackrock-ai/internal/handler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		title   string
		summary string
		output  string
		legacy  bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate plan, budget, roadmap and success score for a project",
		Long: `Estimate runs the same pipeline as POST /v1/generate and prints the result.

With --legacy it prints the static /plan fixture instead.`,
		Example: `  estimate --title "Smart Insulin Pump" --summary "FDA medical device with HIPAA data"
  estimate --title "Todo App" -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			if legacy {
				payload = handler.LegacyPlan(title)
			} else {
				if title == "" {
					return fmt.Errorf("--title is required")
				}
				req := models.GenerateRequest{Title: title}
				if cmd.Flags().Changed("summary") {
					req.Summary = &summary
				}
				payload = service.NewEstimator().Generate(req)
			}
			return render(cmd.OutOrStdout(), payload, output)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "project title")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "project summary")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "print the static /plan response")
	cmd.SilenceUsage = true

	return cmd
}

func render(w io.Writer, payload any, format string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if format == "json" {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	switch format {
	case "json":
		_, err := w.Write(buf.Bytes())
		return err
	case "yaml":
		// JSON является подмножеством YAML: разбираем в Node, чтобы
		// сохранить порядок ключей, и переводим в блочный стиль.
		var node yaml.Node
		if err := yaml.Unmarshal(buf.Bytes(), &node); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		n.Style &^= yaml.DoubleQuotedStyle
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
