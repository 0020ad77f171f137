package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/brandforge/adcanvas/internal/server"
	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/store"
)

// Store backends selectable via --store.
const (
	storeMemory = "memory"
	storeFile   = "file"
	storeRedis  = "redis"
	storeMongo  = "mongo"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	storeKind string // document store backend
	storeDir  string // directory for the file backend
	redisURL  string // connection URL for the redis backend
	mongoURL  string // connection URI for the mongo backend
	noCache   bool   // disable the report cache
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		Long: `Serve exposes the format catalog, compliance checks, resizing, and
document storage over HTTP. Documents can be kept in memory (default), on
disk, in Redis, or in MongoDB.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&opts.storeKind, "store", storeMemory, "document store: memory, file, redis, or mongo")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "directory for the file store")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "redis connection URL (redis://...)")
	cmd.Flags().StringVar(&opts.mongoURL, "mongo-url", "", "mongodb connection URI (mongodb://...)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache")

	return cmd
}

// runServe builds the server from the flags and runs it until the context
// is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	docStore, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer docStore.Close(context.Background())

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(server.Config{
		Runner: runner,
		Store:  docStore,
		Logger: c.Logger,
	})

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "store", opts.storeKind)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// newStore builds the document store named by --store.
func newStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.storeKind {
	case storeMemory:
		return store.NewMemoryStore(), nil
	case storeFile:
		if opts.storeDir == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--store-dir is required with --store=file")
		}
		return store.NewFileStore(opts.storeDir)
	case storeRedis:
		if opts.redisURL == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--redis-url is required with --store=redis")
		}
		return store.NewRedisStore(ctx, opts.redisURL)
	case storeMongo:
		if opts.mongoURL == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--mongo-url is required with --store=mongo")
		}
		return store.NewMongoStore(ctx, opts.mongoURL, appName, "documents")
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", opts.storeKind)
	}
}
