package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/anrid/race-stats/internal/cli"
	"github.com/anrid/race-stats/pkg/stats"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		dbFile   string
		logLevel string
		combined []string
	)

	rootCmd := &cobra.Command{
		Use:   "create SPREADSHEET...",
		Short: "Import race and ethnicity rates from spreadsheets into a dataset",
		Long: `The create command reads XLS or XLSX files whose first row names the
record fields (state, blackPosPerCap, blackDeathPerCap, ...) and merges them
into the dataset file.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.SetupLogging(cli.Value(logLevel, cli.EnvLogLevel, "info"), os.Stderr)
			dbFile = cli.Value(dbFile, cli.EnvDatabase, cli.DefaultDatabase)

			db, found, err := stats.LoadIfExists(dbFile)
			if err != nil {
				return err
			}
			if !found {
				log.Info().Str("db", dbFile).Msg("Creating new dataset")
				db = stats.NewDataset(stats.DefaultConfig())
			}
			if len(combined) > 0 {
				db.CombinedStates = normalizeStates(combined)
			}

			for _, path := range args {
				records, err := stats.ReadStateRecords(path)
				if err != nil {
					return err
				}
				log.Info().Str("file", path).Int("states", len(records)).Msg("Imported spreadsheet")
				db.Add(stats.NewFile(path), records)
			}

			if err := db.Validate(); err != nil {
				return fmt.Errorf("dataset not saved: %w", err)
			}
			if err := db.Save(dbFile); err != nil {
				return err
			}
			log.Info().Str("db", dbFile).Msg("Saved dataset")

			printInfo(db.Info())
			return nil
		},
	}

	rootCmd.Flags().StringVar(&dbFile, "db", "", "Dataset file (env "+cli.EnvDatabase+", default "+cli.DefaultDatabase+")")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringSliceVar(&combined, "combined", nil, "States reporting race and ethnicity combined, e.g. AR,CA")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func normalizeStates(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id != "" {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func printInfo(info stats.DatasetInfo) {
	p := message.NewPrinter(language.English)

	p.Printf(`
	States          : %d
	Combined States : %d
	Sources         : %d
	Imported        : %s
	`, info.States, info.CombinedStates, info.Sources, info.Imported.Format("2006-01-02 15:04"))
	p.Println("")

	types := make([]string, 0, len(info.RateTypes))
	for t := range info.RateTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		p.Printf("\t%-30s : %d\n", t, info.RateTypes[t])
	}
}
