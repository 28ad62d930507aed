package main

import (
	"github.com/wellspring-health/clinic/cmd/clinicctl/command"
)

func main() {
	command.Execute()
}
