// Command unitctl is a small CLI over the unit conversion engine,
// shipped alongside the library the way the teacher ships
// example/main.go and examples/psi/main.go next to gurre-si.
package main

import "github.com/fish2000/pint/cmd/unitctl/cmd"

func main() {
	cmd.Execute()
}
