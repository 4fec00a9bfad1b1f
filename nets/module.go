package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
