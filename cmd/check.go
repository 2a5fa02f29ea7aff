package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jcdickinson/doxymd/internal/markdown"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check <out-dir>",
	Short:   "Check the structure of generated Markdown pages",
	Example: `  doxymd check docs/api`,
	Args:    cobra.ExactArgs(1),
	Run:     runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	loadConfig()

	problems, err := markdown.CheckDir(args[0])
	if err != nil {
		log.Fatalf("check failed: %v", err)
	}
	for _, p := range problems {
		fmt.Println(p)
	}
	if len(problems) > 0 {
		fmt.Printf("%d problems found\n", len(problems))
		os.Exit(1)
	}
	fmt.Println("no problems found")
}
