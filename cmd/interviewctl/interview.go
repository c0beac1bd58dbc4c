package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/interview/pkg/assessment"
	"github.com/artem13815/interview/pkg/candidate"
	"github.com/artem13815/interview/pkg/checkpoint"
	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/resume"
)

const pollInterval = 200 * time.Millisecond

func (c *cli) interviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Run a timed interview in the terminal",
		Long: "Asks the questions one by one with the countdown running. Each line typed is an\n" +
			"answer; when time runs out the question is skipped. Contact details come from\n" +
			"--resume and can be overridden with --name, --email and --phone.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := c.logger()
			defer func() { _ = log.Sync() }()

			info, err := c.candidateInfo(ctx, log)
			if err != nil {
				return err
			}
			bank, err := c.bank()
			if err != nil {
				return err
			}

			var kv checkpoint.KV = checkpoint.NewMemoryKV()
			if dir := c.v.GetString("state-dir"); dir != "" {
				if kv, err = checkpoint.NewFileKV(dir); err != nil {
					return err
				}
			}
			cp := checkpoint.New(kv, log)
			store, err := candidate.NewKVStore(ctx, cp)
			if err != nil {
				return err
			}
			svc := assessment.NewService(bank, store, cp, assessment.Config{TickInterval: c.tick()}, log)
			defer svc.Close()

			_, err = runInterview(ctx, svc, info, cmd.InOrStdin(), cmd.OutOrStdout(), pollInterval)
			return err
		},
	}
	cmd.Flags().String("name", "", "candidate name")
	cmd.Flags().String("email", "", "candidate email")
	cmd.Flags().String("phone", "", "candidate phone")
	cmd.Flags().String("resume", "", "PDF or DOCX resume to prefill contact details")
	cmd.Flags().String("state-dir", "", "directory for checkpoints and finished interviews (default: memory only)")
	cmd.Flags().Duration("tick", time.Second, "countdown cadence")
	for _, f := range []string{"name", "email", "phone", "resume", "state-dir", "tick"} {
		_ = c.v.BindPFlag(f, cmd.Flags().Lookup(f))
	}
	return cmd
}

func (c *cli) candidateInfo(ctx context.Context, log *zap.Logger) (resume.CandidateInfo, error) {
	var info resume.CandidateInfo
	if path := c.v.GetString("resume"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return info, err
		}
		ex, err := resume.NewExtractionService(log).FromFile(ctx, path, data)
		if err != nil {
			return info, fmt.Errorf("%s: %w", path, err)
		}
		info = ex.Info
		info.ResumeRef = path
	}
	if v := c.v.GetString("name"); v != "" {
		info.Name = v
	}
	if v := c.v.GetString("email"); v != "" {
		info.Email = v
	}
	if v := c.v.GetString("phone"); v != "" {
		info.Phone = v
	}
	return info, nil
}

// runInterview reads one answer per line from in. When in is exhausted the
// remaining questions are answered blank.
func runInterview(ctx context.Context, uc assessment.UseCase, info resume.CandidateInfo, in io.Reader, out io.Writer, poll time.Duration) (assessment.View, error) {
	v, err := uc.Start(ctx, info)
	if err != nil {
		return v, err
	}
	if len(v.Transcript) > 0 {
		fmt.Fprintln(out, v.Transcript[0].Content)
	}

	done := make(chan struct{})
	defer close(done)
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	shown := -1
	eof := false
	for {
		if v.IsComplete {
			printResult(out, v)
			return v, nil
		}
		if v.CurrentIndex != shown {
			printQuestion(out, v)
			shown = v.CurrentIndex
		}
		if eof {
			idx := v.CurrentIndex
			next, err := uc.Submit(ctx, v.ID, assessment.Submission{QuestionIndex: idx})
			if errors.Is(err, interview.ErrInvalidTransition) {
				next, err = uc.Get(ctx, v.ID)
			}
			if err != nil && !errors.Is(err, assessment.ErrStaleAnswer) {
				return v, err
			}
			v = next
			continue
		}

		select {
		case <-ctx.Done():
			return v, ctx.Err()

		case line, ok := <-lines:
			if !ok {
				eof = true
				continue
			}
			idx := v.CurrentIndex
			next, err := uc.Submit(ctx, v.ID, assessment.Submission{Text: line, QuestionIndex: idx})
			if errors.Is(err, interview.ErrInvalidTransition) {
				next, err = uc.Get(ctx, v.ID)
			}
			switch {
			case errors.Is(err, assessment.ErrStaleAnswer):
				fmt.Fprintln(out, "Time ran out before the answer arrived; it was not recorded.")
			case err != nil:
				return v, err
			}
			v = next

		case <-ticker.C:
			next, err := uc.Get(ctx, v.ID)
			if err != nil {
				return v, err
			}
			if next.CurrentIndex != v.CurrentIndex || next.IsComplete {
				fmt.Fprintln(out, "Time is up!")
			}
			v = next
		}
	}
}

func printQuestion(out io.Writer, v assessment.View) {
	q := v.Questions[v.CurrentIndex]
	fmt.Fprintf(out, "\nQuestion %d of %d [%s, %ds]\n%s\n> ",
		v.CurrentIndex+1, len(v.Questions), q.Difficulty.Label(), v.TimeRemaining, q.Text)
}

func printResult(out io.Writer, v assessment.View) {
	fmt.Fprintf(out, "\n\nInterview complete. Score: %d%%\n\n", v.Score)
	for i, ev := range v.Evaluations {
		fmt.Fprintf(out, "%d. [%d/10] %s\n", i+1, ev.Score, ev.Feedback)
	}
	fmt.Fprintf(out, "\n%s\n", v.Summary)
}
