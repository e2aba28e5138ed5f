package flow_fx

import (
	"go.uber.org/fx"

	"giftfinder/pkg/memcache"
)

var Module = fx.Provide(provideFlowStore)

func provideFlowStore() memcache.FlowStore {
	return memcache.NewFlowState()
}
