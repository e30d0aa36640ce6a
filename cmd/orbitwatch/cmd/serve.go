package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orbitwatch/orbitwatch/internal/feeds/celestrak"
	"github.com/orbitwatch/orbitwatch/internal/feeds/launchlib"
	"github.com/orbitwatch/orbitwatch/internal/feeds/spacex"
	"github.com/orbitwatch/orbitwatch/internal/server"
	"github.com/orbitwatch/orbitwatch/internal/server/cache"
	"github.com/orbitwatch/orbitwatch/internal/service"
	"github.com/orbitwatch/orbitwatch/pkg/logging"
)

var (
	serveHost      string
	servePort      int
	serveCacheTTL  time.Duration
	serveLiveTTL   time.Duration
	serveRateLimit int
	serveNoCORS    bool
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the orbitwatch API server",
	Long: `Serve starts the HTTP API server. It fetches the SpaceX and CelesTrak
catalogs on demand, reconciles them, and serves the result with a TTL cache
so upstream feeds are queried at most once per cache window.`,
	Example: `  orbitwatch serve
  orbitwatch serve --port 9090 --cache-ttl 5m`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "Host interface to bind")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port for the API server")
	serveCmd.Flags().DurationVar(&serveCacheTTL, "cache-ttl", service.DefaultTTL, "Catalog cache time to live")
	serveCmd.Flags().DurationVar(&serveLiveTTL, "live-ttl", service.DefaultLiveTTL, "Live launch cache time to live")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 120, "Requests per minute per client, 0 disables")
	serveCmd.Flags().BoolVar(&serveNoCORS, "no-cors", false, "Disable CORS headers")

	for _, flag := range []string{"host", "port", "cache-ttl", "live-ttl", "rate-limit"} {
		if err := viper.BindPFlag("serve."+flag, serveCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.Default()

	svc := newService()

	cfg := server.DefaultConfig()
	cfg.Host = viper.GetString("serve.host")
	cfg.Port = viper.GetInt("serve.port")
	cfg.EnableCORS = !serveNoCORS
	if serveRateLimit <= 0 {
		cfg.EnableRateLimit = false
	} else {
		cfg.RateLimit.RequestsPerMinute = serveRateLimit
	}

	srv := server.New(cfg, svc, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// newService wires the upstream feed clients and cache into a service.
func newService() *service.Service {
	ttl := viper.GetDuration("serve.cache-ttl")
	if ttl <= 0 {
		ttl = service.DefaultTTL
	}
	liveTTL := viper.GetDuration("serve.live-ttl")
	if liveTTL <= 0 {
		liveTTL = service.DefaultLiveTTL
	}

	c := cache.New(ttl, ttl/2)
	return service.New(
		spacex.New(),
		celestrak.New(),
		launchlib.New(),
		c,
		logging.Default(),
		service.WithTTL(ttl),
		service.WithLiveTTL(liveTTL),
	)
}
