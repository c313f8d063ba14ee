package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rulegen/debugs"
	"github.com/reusee/rulegen/drivers"
	"github.com/reusee/rulegen/genconfigs"
)

type Module struct {
	dscope.Module
	Drivers drivers.Module
	Configs genconfigs.Module
	Debugs  debugs.Module
}
