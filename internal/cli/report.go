package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dhi-workshop/internal/domain"
	"dhi-workshop/internal/scanner"
)

func newSummarizeCommand() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "summarize <report.json>",
		Short: "Print a severity summary of a JSON scan report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			report, err := scanner.ReadReportFile(args[0])
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), scanner.Summarize(report, image, ""))
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Image name to show instead of the report's artifact name")
	return cmd
}

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <baseline.json> <candidate.json>",
		Short: "Compare the findings of two JSON scan reports",
		Long: `Prints per-severity counts of a baseline image report and a candidate report
(usually the hardened variant) with the reduction the candidate achieves.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			baseline, err := scanner.ReadReportFile(args[0])
			if err != nil {
				return err
			}
			candidate, err := scanner.ReadReportFile(args[1])
			if err != nil {
				return err
			}

			cmp := domain.Compare(
				scanner.Summarize(baseline, "", ""),
				scanner.Summarize(candidate, "", ""),
			)
			return printComparison(cmd.OutOrStdout(), cmp)
		},
	}
}

func printSummary(w io.Writer, s *domain.ScanSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "IMAGE\t%s\n", s.Image)
	if s.OSFamily != "" {
		fmt.Fprintf(tw, "OS\t%s %s\n", s.OSFamily, s.OSName)
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "SEVERITY\tCOUNT")
	for _, sev := range domain.Severities {
		fmt.Fprintf(tw, "%s\t%d\n", sev, s.Counts.Get(sev))
	}
	fmt.Fprintf(tw, "TOTAL\t%d\n", s.Total)
	fmt.Fprintf(tw, "FIXABLE\t%d\n", s.Fixable)
	return tw.Flush()
}

func printComparison(w io.Writer, cmp *domain.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SEVERITY\t%s\t%s\tDELTA\n", cmp.Baseline.Image, cmp.Candidate.Image)
	for _, sev := range domain.Severities {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\n", sev,
			cmp.Baseline.Counts.Get(sev), cmp.Candidate.Counts.Get(sev), cmp.Delta.Get(sev))
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%+d\n",
		cmp.Baseline.Total, cmp.Candidate.Total, cmp.Candidate.Total-cmp.Baseline.Total)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nReduction: %.1f%%\n", cmp.ReductionPercent)
	return err
}
