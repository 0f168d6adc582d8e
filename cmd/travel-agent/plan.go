package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"travel-agent-service/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	var exportPaths []string

	cmd := &cobra.Command{
		Use:   "plan [request...]",
		Short: "Plan a trip from a free-form request",
		Long: `Plan a trip from a free-form travel request and print the itinerary.

When no request is given on the command line it is read from standard input.

Examples:
  travel-agent plan "Paris to Boston, 5 days from 2024-09-01, interests: jazz"
  travel-agent plan -e trip.pdf -e trip.ics "Denver to Paris next week"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				var err error
				if query, err = readQuery(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			if query == "" {
				return fmt.Errorf("travel request is empty")
			}

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			a, err := newApp(ctx, cfg, log, prometheus.NewRegistry())
			if err != nil {
				log.Sync()
				return err
			}
			defer a.Close(context.Background())

			presenter := usecase.NewItineraryPresenter(cmd.OutOrStdout(), a.exports, exportPaths, log)
			if _, err := a.pipeline.Run(ctx, query, presenter); err != nil {
				return err
			}

			for _, failure := range presenter.Failures() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Export to %s failed: %v\n", failure.Path, failure.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&exportPaths, "export", "e", nil, "also write the itinerary to a .pdf or .ics file (repeatable)")

	return cmd
}

// readQuery prompts for a single line of input
func readQuery(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Enter your travel request: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read travel request: %w", err)
	}
	return strings.TrimSpace(line), nil
}
