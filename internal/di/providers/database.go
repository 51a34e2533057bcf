package providers

import (
	"github.com/samber/do/v2"

	"github.com/neuronspark/spark-server/internal/config"
	"github.com/neuronspark/spark-server/internal/logger"
	"github.com/neuronspark/spark-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the document store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.New(cfg.Store.DataPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Document store initialized", "path", cfg.Store.DataPath)

	return &StoreHandle{Store: db}, nil
}
