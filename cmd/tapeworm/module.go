package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/debugs"
	"github.com/reusee/tapeworm/runs"
	"github.com/reusee/tapeworm/viewer"
	"github.com/reusee/tapeworm/webs"
)

type Module struct {
	dscope.Module
	Runs   runs.Module
	Viewer viewer.Module
	Webs   webs.Module
	Debugs debugs.Module
}
