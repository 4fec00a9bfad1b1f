package viewer

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/runs"
	"github.com/reusee/tapeworm/wormconfigs"
)

type Module struct {
	dscope.Module
	Runs    runs.Module
	Configs wormconfigs.Module
}
