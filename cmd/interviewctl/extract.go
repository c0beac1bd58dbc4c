package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/interview/pkg/resume"
)

type extractOutput struct {
	resume.CandidateInfo
	TextExtracted bool   `json:"textExtracted"`
	Text          string `json:"text,omitempty"`
}

func (c *cli) extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Extract candidate name, email and phone from a PDF or DOCX resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			log := c.logger()
			defer func() { _ = log.Sync() }()

			ex, err := resume.NewExtractionService(log).FromFile(cmd.Context(), args[0], data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := extractOutput{CandidateInfo: ex.Info, TextExtracted: !ex.TextFailed}
			if c.v.GetBool("with-text") {
				out.Text = ex.Text
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().Bool("with-text", false, "include the extracted plain text")
	_ = c.v.BindPFlag("with-text", cmd.Flags().Lookup("with-text"))
	return cmd
}
