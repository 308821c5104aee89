package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mmcdole/gallery/internal/catalog/artic"
	"github.com/mmcdole/gallery/internal/config"
	"github.com/mmcdole/gallery/internal/logging"
	"github.com/mmcdole/gallery/internal/pager"
	"github.com/mmcdole/gallery/internal/selection"
)

// session is one table session: a coordinator with its own selection
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	coord  *pager.Coordinator
	closer io.Closer // Log file; nil when logging is discarded
}

// newSession loads configuration and wires client, fetcher, selection and
// coordinator together
func newSession(cmd *cobra.Command) (*session, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfigFrom(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	logger, closer, err := logging.Open(&cfg.Logging)
	if err != nil {
		// Fall back to a discarding logger if file logging fails
		logger = logging.Discard()
	}
	slog.SetDefault(logger)

	client := artic.NewClient(cfg.Catalog.URL, logger,
		artic.WithUserAgent(cfg.Catalog.UserAgent),
		artic.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.Timeout}),
	)
	fetcher := pager.NewFetcher(client, cfg.Catalog.PageSize, logger)
	coord := pager.NewCoordinator(fetcher, selection.New(logger), logger)

	return &session{cfg: cfg, logger: logger, coord: coord, closer: closer}, nil
}

// Close releases the log file
func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
