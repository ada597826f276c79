package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"StockWatch/internal/analyzer"
	"StockWatch/internal/config"
	"StockWatch/internal/market"
	"StockWatch/internal/render"
)

const usage = `usage: stockwatch <command> [flags]

commands:
  percent       print percent change of one or more tickers
  volume        print day-over-day volume changes of a ticker
  profit-chart  write a stock-vs-benchmark percent change line chart
  volume-chart  write a volume increase/decrease bar chart

flags:
  -tickers    comma separated tickers (percent)
  -ticker     single ticker (volume, profit-chart, volume-chart)
  -start      range start, YYYY-MM-DD
  -end        range end, YYYY-MM-DD
  -benchmark  benchmark ticker (profit-chart, default SP500)
  -config     config file path (default configs/config.yaml)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	tickers := fs.String("tickers", "", "comma separated tickers")
	ticker := fs.String("ticker", "", "ticker symbol")
	start := fs.String("start", "", "range start, YYYY-MM-DD")
	end := fs.String("end", "", "range end, YYYY-MM-DD")
	benchmark := fs.String("benchmark", "SP500", "benchmark ticker")
	cfgPath := fs.String("config", "", "config file path")
	_ = fs.Parse(os.Args[2:])

	_ = godotenv.Load()
	if *cfgPath == "" {
		*cfgPath = "configs/config.yaml"
		if v := os.Getenv("STOCKWATCH_CONFIG"); v != "" {
			*cfgPath = v
		}
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	src := market.NewYahooSource(market.Options{
		AdjustedClose: cfg.Market.AdjustedClose,
		SymbolMap:     cfg.Market.SymbolMap,
	})
	log.Debug().Str("source", src.Name()).Bool("adjusted_close", cfg.Market.AdjustedClose).Msg("market source ready")

	a := analyzer.New(src, log)

	switch command {
	case "percent":
		series, err := a.PercentChange(splitTickers(*tickers), *start, *end)
		if err != nil {
			log.Fatal().Err(err).Msg("percent change failed")
		}
		fmt.Print(render.PercentTable(series))

	case "volume":
		series, err := a.VolumeChange(*ticker, *start, *end)
		if err != nil {
			log.Fatal().Err(err).Msg("volume change failed")
		}
		fmt.Print(render.VolumeTable(series))

	case "profit-chart":
		line, err := a.ProfitChart(*ticker, *start, *end, *benchmark)
		if err != nil {
			log.Fatal().Err(err).Msg("profit chart failed")
		}
		path := filepath.Join(cfg.Chart.OutputDir, fmt.Sprintf("profit_%s_%s.html", *ticker, *benchmark))
		writeChart(log, path, line.Render)

	case "volume-chart":
		path := filepath.Join(cfg.Chart.OutputDir, fmt.Sprintf("volume_%s.html", *ticker))
		writeChart(log, path, func(w io.Writer) error {
			return a.VolumeChart(*ticker, *start, *end, w)
		})

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, _ := zerolog.ParseLevel(cfg.Log.Level) // checked by cfg.Validate
	var w io.Writer = os.Stderr
	if cfg.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func writeChart(log zerolog.Logger, path string, renderTo func(io.Writer) error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("create chart directory")
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Msg("create chart file")
	}
	defer f.Close()
	if err := renderTo(f); err != nil {
		log.Fatal().Err(err).Msg("render chart")
	}
	log.Info().Str("path", path).Msg("chart written")
}

func splitTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
