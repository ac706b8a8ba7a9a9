package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/npaulus/kanban-server/internal/config"
	"github.com/npaulus/kanban-server/internal/kanban"
	"github.com/npaulus/kanban-server/internal/logger"
	"github.com/npaulus/kanban-server/internal/persist"
	"github.com/npaulus/kanban-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the snapshot store. When storage is disabled the
// store runs in unsupported mode and every write becomes a no-op.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	st := store.New(cfg.Storage.DataPath, log.Logger)
	if st.IsSupported() {
		log.Info("Snapshot store configured", "path", cfg.Storage.DataPath)
	} else {
		log.Warn("Persistence unavailable, running in memory only")
	}

	return &StoreHandle{Store: st}, nil
}

// WriterHandle wraps the persistence writer with shutdown capability.
type WriterHandle struct {
	*persist.Writer
}

// Shutdown implements do.Shutdownable.
func (h *WriterHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Writer.Shutdown(ctx)
}

// ProvideWriter provides the debounced snapshot writer, already started.
func ProvideWriter(i do.Injector) (*WriterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	writer := persist.New(storeHandle.Store, log.Logger, cfg.Persist.Debounce)
	writer.Start()

	log.Info("Snapshot writer started", "debounce", cfg.Persist.Debounce)

	return &WriterHandle{Writer: writer}, nil
}

// ProvideEngine provides the hydrated board state container.
func ProvideEngine(i do.Injector) (*kanban.Container, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	writerHandle := do.MustInvoke[*WriterHandle](i)

	devMode := cfg.App.Environment == "development"
	container := kanban.New(writerHandle.Writer, log.Logger, devMode)
	container.Initialize(context.Background(), storeHandle.Store)

	snap := container.Snapshot()
	log.Info("Board state ready",
		"phase", string(container.Phase()),
		"boards", len(snap.Boards),
		"cards", len(snap.Cards),
	)

	return container, nil
}
