package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/tracekv/pkg"
)

// Version prints the program version.
type Version struct {
	Verbose bool `help:"Include program name and description" short:"v"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	w := outputFrom(ctx)
	version := strings.TrimSpace(pkg.Version)

	if v.Verbose {
		_, err := fmt.Fprintf(w, "%s %s - %s\n", pkg.Name, version, pkg.Description)

		return err
	}

	_, err := fmt.Fprintln(w, version)

	return err
}
