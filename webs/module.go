package webs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/nets"
	"github.com/reusee/tapeworm/wormconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Nets    nets.Module
	Configs wormconfigs.Module
}
