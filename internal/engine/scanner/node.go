package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/embedstr/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/embedstr/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/embedstr/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/embedstr/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.TokenizerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scanner, error) {
			tokenizer, err := graft.Dep[ports.Tokenizer](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScanner(tokenizer, telemetry, log), nil
		},
	})
}
