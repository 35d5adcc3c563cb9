// marketsim seeds an in-memory marketplace store from the fixture dataset,
// renders the read-side views, and can optionally replay the full award and
// completion flow through the action vocabulary. It plays the part of the
// presentation layer: it validates nothing itself, it just dispatches
// actions and renders snapshots.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"servimarket/config"
	"servimarket/market"
	"servimarket/seed"
	"servimarket/views"
)

var (
	flConfig  = pflag.String("config", "", "path to a YAML config file")
	flFixture = pflag.String("fixture", "", "path to a fixture JSON file (defaults to the embedded dataset)")
	flSort    = pflag.String("sort", "", "quote sort key: price, time or rating")
	flDemo    = pflag.Bool("demo", false, "replay the award/completion flow before reporting")
)

func main() {
	// A missing .env is fine; it only exists for local overrides.
	_ = godotenv.Load()
	pflag.Parse()

	cfg, err := config.Load(*flConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marketsim: %v\n", err)
		os.Exit(1)
	}
	if *flFixture != "" {
		cfg.FixturePath = *flFixture
	}
	if *flSort != "" {
		cfg.Report.SortBy = *flSort
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "marketsim: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	state, err := seed.Load(cfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", "err", err)
		os.Exit(1)
	}
	store := market.New(state)
	logger.Info("store seeded",
		"users", len(state.Users),
		"services", len(state.Services),
		"quotes", len(state.Quotes),
		"supplies", len(state.Supplies),
		"offers", len(state.SupplyOffers),
	)

	if *flDemo {
		if err := runDemo(store, logger); err != nil {
			logger.Error("demo flow failed", "err", err)
			os.Exit(1)
		}
	}

	report(os.Stdout, store.Snapshot(), cfg.Report)
}

// runDemo walks one service through the whole lifecycle: the requester logs
// in, reviews the comparator, awards the cheapest quote and completes the
// job with a five-star rating.
func runDemo(store *market.Store, logger *slog.Logger) error {
	userID, _, err := store.Dispatch(market.Login{Email: "maria@example.com", Password: "123456"})
	if err != nil {
		return err
	}
	logger.Info("logged in", "user", userID)

	if _, _, err := store.Dispatch(market.MarkUnderEvaluation{ServiceID: "s1"}); err != nil {
		return err
	}
	logger.Info("service under evaluation", "service", "s1")

	cmp := views.CompareQuotes(store.Snapshot(), "s1", views.SortByPrice)
	if cmp.Summary == nil {
		return fmt.Errorf("service s1 has no quotes to award")
	}
	best := cmp.Quotes[0]
	logger.Info("awarding best-priced quote",
		"quote", best.ID, "price", best.Price, "leadDays", best.LeadDays)

	if _, _, err := store.Dispatch(market.SelectQuote{ServiceID: "s1", QuoteID: best.ID}); err != nil {
		return err
	}
	if _, _, err := store.Dispatch(market.CompleteService{
		ServiceID: "s1",
		Rating:    5,
		Comment:   "Impecable, volvería a contratar",
	}); err != nil {
		return err
	}

	snap := store.Snapshot()
	provider, _ := snap.UserByID(best.ProviderID)
	logger.Info("service completed",
		"provider", provider.Name,
		"rating", provider.Rating,
		"ratings", provider.RatingCount,
	)

	_, _, err = store.Dispatch(market.Logout{})
	return err
}

func report(out *os.File, st market.State, opts config.ReportConfig) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "SERVICES")
	for _, svc := range st.Services {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
			svc.ID, svc.Title, svc.Category.Label(), market.CityLabel(svc.City), svc.Status.Label())

		cmp := views.CompareQuotes(st, svc.ID, views.SortKey(opts.SortBy))
		if cmp.Summary == nil {
			fmt.Fprintln(w, "  \tno quotes yet")
			continue
		}
		fmt.Fprintf(w, "  \tbest price %.0f\tbest lead %dd\tmean rating %.1f\n",
			cmp.Summary.MinPrice, cmp.Summary.MinLeadDays, cmp.Summary.MeanRating)
		for i, q := range cmp.Quotes {
			if i >= opts.TopQuotes {
				break
			}
			provider, _ := st.UserByID(q.ProviderID)
			marks := ""
			if q.BestPrice {
				marks += " [best price]"
			}
			if q.BestLeadTime {
				marks += " [fastest]"
			}
			fmt.Fprintf(w, "  \t%s\t%.0f\t%dd\t%.1f★%s\n",
				provider.Name, q.Price, q.LeadDays, q.ProviderRating, marks)
		}
	}

	fmt.Fprintln(w, "\nSUPPLY DEMAND")
	groups := views.AggregateDemand(st)
	if len(groups) == 0 {
		fmt.Fprintln(w, "  no open demand")
	}
	for _, g := range groups {
		fmt.Fprintf(w, "  %s\t%.0f %s\t%d service(s)\n", g.Name, g.TotalQuantity, g.Unit, len(g.Services))
		for _, sd := range g.Services {
			fmt.Fprintf(w, "  \t%s\t%.0f %s\n", sd.Title, sd.Quantity, g.Unit)
		}
	}

	fmt.Fprintln(w, "\nSUPPLY OFFERS")
	for _, svc := range st.Services {
		for _, ro := range views.ResolveOffersForService(st, svc.ID) {
			vendor, _ := st.UserByID(ro.Offer.VendorID)
			tag := ""
			if ro.Offer.IsPack {
				tag = fmt.Sprintf(" (pack, %d%% off)", ro.Offer.PackDiscountPct)
			}
			fmt.Fprintf(w, "  %s\t%s\ttotal %.0f%s\n", svc.Title, vendor.Name, ro.Offer.TotalPrice, tag)
			for _, item := range ro.Items {
				fmt.Fprintf(w, "  \t%s\t%.0f %s\t%.0f\n",
					item.Supply.Name, item.Item.Quantity, item.Supply.Unit, item.Subtotal)
			}
		}
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
