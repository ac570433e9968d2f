package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/ctlbind/bindmap"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check binding map files or directories of " + bindmap.Ext + " files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var maps []*bindmap.Map
			for _, path := range args {
				found, err := loadMaps(path)
				if err != nil {
					return err
				}
				maps = append(maps, found...)
			}
			return report(cmd, maps, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}

func loadMaps(path string) ([]*bindmap.Map, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	store := bindmap.New(path)
	if info.IsDir() {
		if err := store.ScanAll(); err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
	} else if err := store.ScanFile(path); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return store.Files(), nil
}

func report(cmd *cobra.Command, maps []*bindmap.Map, strict bool) error {
	out := cmd.OutOrStdout()
	var bindings, errs, warnings int
	for _, m := range maps {
		bindings += len(m.Entries)
		for _, d := range m.Diagnostics {
			fmt.Fprintln(out, d.String())
			if d.Severity == bindmap.SeverityWarning {
				warnings++
			} else {
				errs++
			}
		}
	}

	fmt.Fprintf(out, "%d files, %d bindings, %d errors, %d warnings\n", len(maps), bindings, errs, warnings)

	if errs > 0 || (strict && warnings > 0) {
		return fmt.Errorf("check failed")
	}
	return nil
}
