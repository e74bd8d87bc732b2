package main

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CatPunch007/LittleWitch/prefabs"
	"github.com/CatPunch007/LittleWitch/sim"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in sequences and embedded input scripts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	fmt.Println("Sequences:")
	for _, name := range sim.Sequences() {
		fmt.Printf("  %s\n", name)
	}

	entries, err := fs.ReadDir(prefabs.ScriptsFS, "scripts")
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Scripts:")
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fmt.Printf("  %s\n", strings.TrimSuffix(e.Name(), ".tengo"))
	}

	fmt.Println()
	fmt.Println("Run 'sim run --sequence <name>' or 'sim run --script <name>'.")
	return nil
}
