package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/artem13815/interview/pkg/evaluation"
)

// answersFile is YAML; JSON input parses the same way.
type answersFile struct {
	Answers []string `yaml:"answers"`
}

func (c *cli) evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate FILE",
		Short: "Score a list of answers against the question bank",
		Long: "Reads a YAML or JSON document of the form {answers: [...]}, one answer per\n" +
			"question in bank order, and prints the score, per-question feedback and summary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var f answersFile
			if err := yaml.Unmarshal(raw, &f); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			bank, err := c.bank()
			if err != nil {
				return err
			}
			questions := bank.Questions()
			if len(f.Answers) > len(questions) {
				return fmt.Errorf("%d answers for %d questions", len(f.Answers), len(questions))
			}

			res := evaluation.Evaluate(questions, f.Answers)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}
