package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/famsnap/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/adapters/gedcom"    //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/adapters/selection" //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/adapters/sqlite"    //nolint:depguard // Wired in app layer
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/famsnap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.HasherNodeID,
			gedcom.NodeID,
			cas.NodeID,
			sqlite.NodeID,
			selection.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.SourceLoader](ctx)
	if err != nil {
		return nil, err
	}

	jsonStore, err := graft.Dep[*cas.Store](ctx)
	if err != nil {
		return nil, err
	}

	sqliteStore, err := graft.Dep[*sqlite.Store](ctx)
	if err != nil {
		return nil, err
	}

	selections, err := graft.Dep[ports.SelectionStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	stores := map[string]ports.CacheStore{
		domain.CacheDriverJSON:   jsonStore,
		domain.CacheDriverSQLite: sqliteStore,
	}

	return New(loader, hasher, source, stores, selections, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
