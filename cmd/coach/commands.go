package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/anatolykoptev/go_interview/internal/engine"
	"github.com/anatolykoptev/go_interview/internal/engine/interview"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// sessionFile is the YAML layout accepted by `coach report`.
type sessionFile struct {
	JobDescription string         `yaml:"job_description"`
	Questions      []string       `yaml:"questions"`
	Answers        map[int]string `yaml:"answers"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "coach",
		Short:        "Interview practice: keywords, questions and heuristic answer scoring",
		SilenceUsage: true,
	}
	root.AddCommand(keywordsCmd(), questionsCmd(), scoreCmd(), reportCmd())
	return root
}

func keywordsCmd() *cobra.Command {
	var jdPath string
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the keywords extracted from a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jd, err := readJD(cmd.InOrStdin(), jdPath)
			if err != nil {
				return err
			}
			for _, kw := range interview.ExtractKeywords(jd) {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&jdPath, "jd", "-", "job description file, - for stdin")
	return cmd
}

func questionsCmd() *cobra.Command {
	var (
		jdPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Generate practice questions for a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jd, err := readJD(cmd.InOrStdin(), jdPath)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = engine.Cfg.MaxQuestions
			}
			for i, q := range interview.GenerateQuestions(interview.ExtractKeywords(jd), limit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&jdPath, "jd", "-", "job description file, - for stdin")
	cmd.Flags().IntVar(&limit, "max", 0, "maximum number of questions (default from MAX_QUESTIONS)")
	return cmd
}

func scoreCmd() *cobra.Command {
	var (
		answer   string
		keywords []string
		jdPath   string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single answer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jdPath != "" && len(keywords) == 0 {
				jd, err := readJD(cmd.InOrStdin(), jdPath)
				if err != nil {
					return err
				}
				keywords = interview.ExtractKeywords(jd)
			}
			r := interview.ScoreAnswer(answer, keywords)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			writeAnalysis(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "answer text")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "comma-separated keywords")
	cmd.Flags().StringVar(&jdPath, "jd", "", "job description file to extract keywords from")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		path   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a report from a YAML session file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sf, err := readSessionFile(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			if len(sf.Questions) == 0 {
				return errors.New("report: session file has no questions")
			}
			r := interview.BuildReport(sf.Questions, sf.Answers, engine.NormalizeJobDescription(sf.JobDescription))
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			writeReport(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "-", "YAML session file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readJD(stdin io.Reader, path string) (string, error) {
	data, err := readInput(stdin, path)
	if err != nil {
		return "", err
	}
	return engine.NormalizeJobDescription(string(data)), nil
}

func readSessionFile(stdin io.Reader, path string) (sessionFile, error) {
	var sf sessionFile
	data, err := readInput(stdin, path)
	if err != nil {
		return sf, err
	}
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("parse session file: %w", err)
	}
	return sf, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeAnalysis(w io.Writer, r interview.AnalysisResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "score\t%d\n", r.Score)
	fmt.Fprintf(tw, "keyword overlap\t%.0f%% (%s)\n", r.KeywordOverlap*100, strings.Join(r.MatchedKeywords, ", "))
	fmt.Fprintf(tw, "filler words\t%d\n", r.FillerCount)
	fmt.Fprintf(tw, "STAR\t%s\n", starString(r.STAR))
	fmt.Fprintf(tw, "sentiment\t%s\n", r.Sentiment)
	fmt.Fprintf(tw, "words/sentence\t%.1f\n", r.AvgWordsPerSentence)
	tw.Flush()
}

func writeReport(w io.Writer, r interview.Report) {
	fmt.Fprintf(w, "Overall score: %d\n", r.OverallScore)
	fmt.Fprintf(w, "Keywords covered: %d/%d\n", r.KeywordHits, r.KeywordTotal)
	if len(r.MissingKeywords) > 0 {
		fmt.Fprintf(w, "Missing: %s\n", strings.Join(r.MissingKeywords, ", "))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tscore\toverlap\tfillers\tSTAR\tsentiment\tw/s\tquestion")
	for _, a := range r.Answers {
		res := a.Result
		fmt.Fprintf(tw, "%d\t%d\t%.0f%%\t%d\t%s\t%s\t%.1f\t%s\n",
			a.Index+1, res.Score, res.KeywordOverlap*100, res.FillerCount,
			starString(res.STAR), res.Sentiment, res.AvgWordsPerSentence,
			engine.TruncateRunes(a.Question, 60, "..."))
	}
	tw.Flush()
}

func starString(f interview.STARFlags) string {
	b := []byte("----")
	if f.Situation {
		b[0] = 'S'
	}
	if f.Task {
		b[1] = 'T'
	}
	if f.Action {
		b[2] = 'A'
	}
	if f.Result {
		b[3] = 'R'
	}
	return string(b)
}
