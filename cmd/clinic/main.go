package main

import (
	"github.com/wellspring-health/clinic/api"
)

func main() {
	api.MainLoop()
}
