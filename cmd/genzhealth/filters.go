// ABOUTME: Shared filter flags for commands that take a selection.
// ABOUTME: Each flag defaults to All.
package main

import (
	"strings"

	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/models"
	"github.com/spf13/cobra"
)

// filterFlags holds one flag value per filter field.
type filterFlags struct {
	values map[models.Field]*string
}

func addFilterFlags(cmd *cobra.Command) *filterFlags {
	ff := &filterFlags{values: make(map[models.Field]*string, len(models.FilterFields))}
	for _, f := range models.FilterFields {
		v := new(string)
		name := strings.ToLower(string(f))
		cmd.Flags().StringVar(v, name, filter.All, "filter by "+name)
		ff.values[f] = v
	}
	return ff
}

func (ff *filterFlags) selection() filter.Selection {
	var sel filter.Selection
	for f, v := range ff.values {
		sel = sel.Set(f, *v)
	}
	return sel.Normalize()
}

// reset restores every flag to All. Used by tests that execute commands
// repeatedly on the shared rootCmd.
func (ff *filterFlags) reset() {
	for _, v := range ff.values {
		*v = filter.All
	}
}
