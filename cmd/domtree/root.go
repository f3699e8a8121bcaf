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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "domtree",
	Short: "Dominator trees for directed graphs",
	Long: "domtree builds the dominator tree of a directed graph with the\n" +
		"Lengauer-Tarjan algorithm and prints it. Graphs come from a plain\n" +
		"edge-list file or a TOML description, see the print command.",
	SilenceUsage: true,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("input", "i", "", "graph file (.toml or plain edge list)")
	rootCmd.PersistentFlags().IntP("root", "r", 0, "root vertex (overrides the file's root)")

	_ = viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))

	viper.SetEnvPrefix("DOMTREE")
	viper.AutomaticEnv()
}

// loadTree reads the configured input file and builds its dominator tree.
func loadTree(cmd *cobra.Command) (*graphSpec, error) {
	path := viper.GetString("input")
	if path == "" {
		return nil, fmt.Errorf("no input file: pass --input or set DOMTREE_INPUT")
	}
	spec, err := readGraph(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("root") {
		spec.Root = viper.GetInt("root")
	}
	return spec, nil
}
