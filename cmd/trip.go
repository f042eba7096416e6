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
	"github.com/spf13/viper"

	"github.com/hitzhangjie/panictrace/pkg/crash"
)

// tripCmd represents the trip command
var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "install the crash handler and panic on purpose",
	Long: `install the crash handler and panic on purpose.

The panic message, the frame offsets and the runtime's own abort output all
go to stdout/stderr, so the printed offsets can be checked against the
host-side symbolizer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		depth := viper.GetInt("trip.depth")

		crash.InstallCrashHandler()

		defer crash.HandlePanic()
		descend(depth)
		return nil
	},
}

// descend pads the stack so the backtrace has something to show
func descend(n int) {
	if n <= 0 {
		panic("tripwire")
	}
	descend(n - 1)
}

func init() {
	rootCmd.AddCommand(tripCmd)

	tripCmd.Flags().Int("depth", 8, "stack depth to build up before panicking")
	viper.SetDefault("trip.depth", 8)
	_ = viper.BindPFlag("trip.depth", tripCmd.Flags().Lookup("depth"))
}
