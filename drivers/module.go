package drivers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rulegen/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
