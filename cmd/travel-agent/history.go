package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"travel-agent-service/internal/infrastructure/persistence"
	repo "travel-agent-service/internal/interface/repository"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated itineraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.MongoURI == "" {
				return fmt.Errorf("itinerary history is disabled: MONGODB_DSN is not set")
			}

			ctx := cmd.Context()

			client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error("MongoDB disconnect error", "error", err)
				}
			}()

			history := repo.NewMongoItineraryRepository(persistence.GetDatabase(client, cfg.MongoDB))
			records, err := history.FindRecent(ctx, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN ID\tCREATED\tROUTE\tQUERY")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s-%s\t%s\n",
					r.RunID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.OriginCode, r.DestinationCode, r.Query)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to list")

	return cmd
}
