package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"udm/internal/apperr"
	catalogrpc "udm/internal/catalog/rpc"
	controllerrpc "udm/internal/controller/rpc"
	"udm/internal/notify"
)

func newRootRouter(registry *prometheus.Registry) chi.Router {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

// serve binds addr, calls ready (if non-nil) once the listener is open,
// and runs the server until ctx is cancelled.
func serve(ctx context.Context, addr string, handler http.Handler, ready func()) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return apperr.Wrap(apperr.BackendError, "bind listener", err)
	}
	srv := &http.Server{Handler: handler}

	if ready != nil {
		ready()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return apperr.Wrap(apperr.BackendError, "serve http", err)
	}
}

// RunCatalog serves the catalog RPC surface on rt.Config.UDM.Port,
// signalling ready once its schema is verified (already done in Build)
// and the listener is bound (spec.md §4.7: "the catalog task signals the
// handle after its schema is verified and the listener is bound").
func (rt *Runtime) RunCatalog(ctx context.Context, logger *slog.Logger, ready *notify.Signal) error {
	registry := prometheus.NewRegistry()
	metrics := catalogrpc.NewMetrics(registry)

	handler := catalogrpc.NewHandler(rt.Catalog, logger)
	root := newRootRouter(registry)
	root.Mount("/v1/catalog", catalogrpc.NewRouter(handler, metrics))

	addr := fmt.Sprintf(":%d", rt.Config.UDM.Port)
	return serve(ctx, addr, root, func() {
		if ready != nil {
			ready.Notify()
		}
	})
}

// RunController waits on ready (nil means "already ready", for the
// standalone controllerd entrypoint), opens its catalog client, and
// serves the controller RPC surface on rt.Config.DrinkController.Port.
func (rt *Runtime) RunController(ctx context.Context, logger *slog.Logger, ready *notify.Signal, catalogHost string) error {
	if ready != nil {
		select {
		case <-ready.C():
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	svc, err := rt.NewControllerService(catalogURL(catalogHost, rt.Config.UDM.Port))
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := controllerrpc.NewMetrics(registry)

	handler := controllerrpc.NewHandler(svc, logger)
	root := newRootRouter(registry)
	root.Mount("/v1/controller", controllerrpc.NewRouter(handler, metrics))

	addr := fmt.Sprintf(":%d", rt.Config.DrinkController.Port)
	return serve(ctx, addr, root, nil)
}

// RunBoth spawns the catalog and controller tasks inside one cooperative
// runtime (spec.md §4.7's "spawn(catalog) → spawn(controller) → await
// either-task-exit") and returns once either exits.
func (rt *Runtime) RunBoth(ctx context.Context, logger *slog.Logger) error {
	ready := notify.NewSignal()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return rt.RunCatalog(ctx, logger.With("daemon", "catalog"), ready) })
	g.Go(func() error { return rt.RunController(ctx, logger.With("daemon", "controller"), ready, "localhost") })

	return g.Wait()
}
