package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/anrid/race-stats/internal/cli"
	"github.com/anrid/race-stats/pkg/stats"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		dbFile   string
		logLevel string
		square   bool
		dump     bool
		workers  int
		xlsxOut  string
	)

	rootCmd := &cobra.Command{
		Use:   "show [STATE...]",
		Short: "Show the race and ethnicity rate cards of one or more states",
		Long: `The show command builds the social card data for the given states, or for
every state in the dataset when none are named, and prints each card's bars.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.SetupLogging(cli.Value(logLevel, cli.EnvLogLevel, "info"), os.Stderr)
			dbFile = cli.Value(dbFile, cli.EnvDatabase, cli.DefaultDatabase)

			db, found, err := stats.LoadIfExists(dbFile)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no dataset found at %s, run the create command in `cmd/create` first", dbFile)
			}

			records, err := selectStates(db, args)
			if err != nil {
				return err
			}

			cards, err := buildCards(db.Config, records, square, workers)
			if err != nil {
				return err
			}

			for _, c := range cards {
				if dump {
					spew.Dump(c)
					continue
				}
				printCard(c)
			}

			if xlsxOut != "" {
				if err := stats.WriteCardsXLSX(xlsxOut, cards); err != nil {
					return err
				}
				log.Info().Str("file", xlsxOut).Int("cards", len(cards)).Msg("Exported cards")
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&dbFile, "db", "", "Dataset file (env "+cli.EnvDatabase+", default "+cli.DefaultDatabase+")")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&square, "square", false, "Use the square card format")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump the full card structure instead of a table")
	rootCmd.Flags().IntVar(&workers, "workers", 4, "Number of cards built at a time")
	rootCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "Also export the cards to this XLSX file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func selectStates(db *stats.Dataset, ids []string) ([]*stats.StateRecord, error) {
	if len(ids) == 0 {
		return db.States, nil
	}

	records := make([]*stats.StateRecord, 0, len(ids))
	for _, id := range ids {
		r, err := db.Find(strings.ToUpper(id))
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// buildCards builds the cards of records concurrently, keeping their order.
func buildCards(cfg stats.Config, records []*stats.StateRecord, square bool, workers int) ([]*stats.Card, error) {
	builder := cfg.Builder()
	combined := cfg.Combined()

	cards := make([]*stats.Card, len(records))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, r := range records {
		i, r := i, r
		g.Go(func() error {
			c, err := builder.Card(r, combined, square)
			if err != nil {
				return fmt.Errorf("card for %s: %w", r.State, err)
			}
			log.Debug().Str("state", r.State).Str("rateType", c.RateType).Int("groups", len(c.Summary.Groups)).Msg("Built card")
			cards[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

func printCard(c *stats.Card) {
	p := message.NewPrinter(language.English)

	p.Printf("\n\n%s (%s)\n", c.State, c.RateType)
	p.Println(c.Headline)

	printBars(p, "Cases per 100,000:", c.Cases)
	printBars(p, "Deaths per 100,000:", c.Deaths)
}

func printBars(p *message.Printer, title string, bars []stats.Bar) {
	if len(bars) == 0 {
		return
	}

	p.Printf("\n%s\n\n", title)
	for i, b := range bars {
		value := "-"
		if b.Value != nil {
			value = p.Sprintf("%.0f", *b.Value)
		}
		smallN := ""
		if b.SmallN {
			smallN = " (small sample)"
		}
		p.Printf("%02d. %-35s  --  %8s  %6.1fpx%s\n", i+1, b.Label, value, b.Width, smallN)
	}
}
