/*
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the dominator tree whenever the input file changes",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := viper.GetString("input")
	if path == "" {
		return fmt.Errorf("no input file: pass --input or set DOMTREE_INPUT")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors replace files on save, which drops a
	// watch registered on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	reprint := func() {
		spec, err := loadTree(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		tree, err := buildSpec(spec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		printTree(cmd.OutOrStdout(), tree)
		fmt.Fprintln(cmd.OutOrStdout(), "---")
	}

	reprint()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name == filepath.Clean(path) && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				reprint()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
