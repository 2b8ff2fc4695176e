// Command dishcovery is a demo CLI for the SDK: upload a dish photo or pull
// recommendations, filter and sort the results, and optionally open the top
// match's detail view.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery"
	"github.com/thvnhtai/dishcovery/internal/config"
	logpkg "github.com/thvnhtai/dishcovery/internal/logger"
	"github.com/thvnhtai/dishcovery/internal/metrics"
	"github.com/thvnhtai/dishcovery/internal/version"
)

func main() {
	imagePath := flag.String("image", "", "dish photo to search with")
	userID := flag.String("user", "", "user id for personalized recommendations")
	topN := flag.Int("top", 0, "number of matches to request")
	sortBy := flag.String("sort", "score", "sort order: score, rating, distance")
	minRating := flag.Float64("min-rating", 0, "minimum rating filter")
	prices := flag.String("price", "", "comma-separated price levels to keep, e.g. 1,2")
	openDetail := flag.Bool("open", false, "open the detail view of the top result")
	flag.Parse()

	// .env is optional; real settings come from the YAML config.
	_ = godotenv.Load()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dishcovery CLI",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("api_host", cfg.API.BaseURL),
	)

	metrics.Register()

	opts := []dishcovery.Option{
		dishcovery.WithBaseURL(cfg.API.BaseURL),
		dishcovery.WithTimeout(time.Duration(cfg.API.TimeoutSec) * time.Second),
		dishcovery.WithLogger(logger),
		dishcovery.WithTopN(cfg.Search.TopN),
		dishcovery.WithPageSizes(cfg.Search.DishPageSize, cfg.Search.ReviewPageSize),
		dishcovery.WithLocationTimeout(time.Duration(cfg.Location.TimeoutSec) * time.Second),
	}
	if cfg.API.Token != "" {
		opts = append(opts, dishcovery.WithStaticToken(cfg.API.Token))
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, dishcovery.WithUserAgent(cfg.API.UserAgent))
	}

	client, err := dishcovery.New(opts...)
	if err != nil {
		logger.Fatal("Failed to create client", zap.Error(err))
	}
	defer client.Close()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	coords := client.Location().Acquire(ctx)
	if coords == nil {
		logger.Info("No device location; results will be unranked by proximity")
	}

	results, err := runSearch(ctx, client, *imagePath, *userID, *topN, coords, logger)
	if err != nil {
		// Search failures degrade to an empty list; tell the user and move on.
		fmt.Fprintln(os.Stderr, "warning: search failed, showing no results (retry may help)")
	}
	client.Session().SaveSearch(results, *imagePath)

	spec := dishcovery.FilterSpec{
		SortBy:      dishcovery.SortBy(*sortBy),
		MinRating:   *minRating,
		PriceLevels: parsePriceLevels(*prices),
	}
	view := dishcovery.ApplyFilters(results, spec)

	printResults(view)

	if *openDetail && len(view) > 0 {
		showDetail(ctx, client, view[0], coords, *userID, logger)
	}
}

func runSearch(
	ctx context.Context, client *dishcovery.Client,
	imagePath, userID string, topN int, coords *dishcovery.Coordinates,
	logger *zap.Logger,
) ([]dishcovery.Restaurant, error) {
	if imagePath == "" {
		return client.Search().Recommendations(ctx, userID, topN, coords)
	}

	f, err := os.Open(imagePath)
	if err != nil {
		logger.Fatal("Failed to open image", zap.String("path", imagePath), zap.Error(err))
	}
	defer f.Close()
	return client.Search().ByImage(ctx, f, f.Name(), topN, coords)
}

func showDetail(
	ctx context.Context, client *dishcovery.Client,
	summary dishcovery.Restaurant, coords *dishcovery.Coordinates,
	userID string, logger *zap.Logger,
) {
	view, err := client.Details().Open(ctx, summary, coords)
	if err != nil {
		logger.Error("Failed to open detail view", zap.Error(err))
		return
	}
	client.Clicks().Log(userID, summary.ID)

	rec := view.Restaurant()
	fmt.Printf("\n%s\n", rec.Name)
	if rec.Description != "" {
		fmt.Println(rec.Description)
	}
	if rec.OpeningHours != "" {
		fmt.Println("Hours:", rec.OpeningHours)
	}
	if rec.MapURL != "" {
		fmt.Println("Map:", rec.MapURL)
	}
	fmt.Println("Menu:")
	for _, item := range view.MenuItems() {
		fmt.Printf("  %s  %s\n", item.Name, item.Price)
	}
	fmt.Println("Reviews:")
	for _, r := range view.Reviews() {
		fmt.Printf("  %.1f  %s: %s\n", r.Rating, r.ReviewerName, r.Comment)
	}
}

func printResults(list []dishcovery.Restaurant) {
	if len(list) == 0 {
		fmt.Println("no results")
		return
	}
	for i, r := range list {
		line := fmt.Sprintf("%2d. %s  rating=%.1f", i+1, r.Name, r.Rating)
		if r.MatchScore != nil {
			line += fmt.Sprintf("  score=%.2f", *r.MatchScore)
		}
		if r.DistanceKm != nil {
			line += fmt.Sprintf("  %.2fkm", *r.DistanceKm)
		}
		if r.PriceLevel.Valid() {
			line += "  " + strings.Repeat("$", int(r.PriceLevel))
		}
		fmt.Println(line)
	}
}

func parsePriceLevels(csv string) []dishcovery.PriceLevel {
	if csv == "" {
		return nil
	}
	var out []dishcovery.PriceLevel
	for _, part := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, dishcovery.PriceLevel(n))
	}
	return out
}
