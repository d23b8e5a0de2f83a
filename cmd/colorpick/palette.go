// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/palette"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (a *app) newPaletteCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "palette [file]",
		Short: "Print the colors of a palette file",
		Long:  `palette prints the colors of the given palette file, or of the configured palette if no file is given. With --watch, it prints them again whenever the file changes, until interrupted.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := a.cfg.Palette
			if len(args) > 0 {
				file = args[0]
			}
			w := cmd.OutOrStdout()
			if err := a.printPalette(w, file); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if file == "" {
				return fmt.Errorf("no palette file to watch")
			}
			return a.watchPalette(cmd.Context(), w, file)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the palette again whenever the file changes")
	return cmd
}

// openPalette opens the given palette file, or returns the CSS
// named colors if it is empty. Invalid entries are logged.
func (a *app) openPalette(file string) (*palette.Palette, error) {
	if file == "" {
		return palette.CSS(), nil
	}
	p, err := palette.Open(file)
	if p == nil {
		return nil, err
	}
	errors.Log(err)
	return p, nil
}

// printPalette prints all of the colors in the given palette file.
func (a *app) printPalette(w io.Writer, file string) error {
	p, err := a.openPalette(file)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%d colors)\n", p.Name, p.Len())
	for _, e := range p.Entries {
		c, err := colors.FromString(e.Color)
		if err != nil {
			fmt.Fprintf(w, "%s  invalid color %q\n", e.Name, e.Color)
			continue
		}
		a.printColor(w, e.Name, c)
	}
	return nil
}

// watchPalette prints the given palette file whenever it changes,
// until the context is done.
func (a *app) watchPalette(ctx context.Context, w io.Writer, file string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating palette file watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace files, so we watch the directory
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("adding palette file watcher: %w", err)
	}
	target := filepath.Clean(file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("palette file changed", "file", file, "op", event.Op.String())
			errors.Log(a.printPalette(w, file))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("palette file watcher error: " + err.Error())
		}
	}
}
