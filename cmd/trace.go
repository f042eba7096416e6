/*
Copyright © 2024 hit.zhangjie@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hitzhangjie/panictrace/pkg/crash"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "print a backtrace of the live stack without crashing",
	Long:  `print a backtrace of the live stack without crashing, to eyeball the output format.`,
	Run: func(cmd *cobra.Command, args []string) {
		crash.PrintBacktrace()
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
