package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/wormconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs wormconfigs.Module
}
