package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amur-data-api/internal/cli"
	"amur-data-api/internal/config"
	"amur-data-api/internal/pairs"
	"amur-data-api/internal/svc"
)

// Resolving a watchlist pair through the repo back-fills its cache entry, so
// hot pairs are served from Redis even right after a deploy or flush.

const resolveTimeout = 5 * time.Second

var configFile = flag.String("f", "etc/amurdata.yaml", "the config file")

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[warm] starting pair cache warmer...")

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("[warm] load config: %v", err)
	}
	for _, line := range cli.ConfigSummaryLines(cfg) {
		log.Printf("[warm] %s", line)
	}

	svcCtx := svc.NewServiceContext(*cfg)
	if svcCtx.Redis == nil {
		log.Fatalf("[warm] redis is not configured, nothing to warm")
	}

	watchlist := make([]pairs.Pair, 0, len(svcCtx.PairsConfig.Watchlist))
	for _, entry := range svcCtx.PairsConfig.Watchlist {
		p, err := pairs.ParsePair(entry)
		if err != nil {
			log.Fatalf("[warm] watchlist: %v", err)
		}
		watchlist = append(watchlist, p)
	}
	if len(watchlist) == 0 {
		log.Fatalf("[warm] watchlist is empty, nothing to warm")
	}

	interval := svcCtx.PairsConfig.WarmInterval
	log.Printf("[warm] %d pairs every %s", len(watchlist), interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	warm(ctx, svcCtx, watchlist)
	for {
		select {
		case <-ctx.Done():
			log.Println("[warm] shutting down")
			return
		case <-ticker.C:
			warm(ctx, svcCtx, watchlist)
		}
	}
}

func warm(ctx context.Context, svcCtx *svc.ServiceContext, watchlist []pairs.Pair) {
	runCtx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	var resolved, absent, failed int
	for _, res := range svcCtx.Pairs.MGet(runCtx, watchlist) {
		switch {
		case res.Err != nil:
			failed++
			log.Printf("[warm] %s: %v", res.Pair, res.Err)
		case res.Info == nil:
			absent++
		default:
			resolved++
		}
	}
	log.Printf("[warm] resolved=%d absent=%d failed=%d", resolved, absent, failed)
}
