package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/embedstr/internal/core/ports"
)

const (
	WalkerNodeID    graft.ID = "adapter.fs.walker"
	ResolverNodeID  graft.ID = "adapter.fs.resolver"
	TokenizerNodeID graft.ID = "adapter.fs.tokenizer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Tokenizer]{
		ID:        TokenizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tokenizer, error) {
			return NewTokenizer(), nil
		},
	})
}
