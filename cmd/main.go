// 指示: miu200521358
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/miu200521358/mu_bone_renderer_setup/pkg/infra/controller/cli"
)

// main はボーン表示設定CLIを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	cmd := cli.NewRootCommand(out, errOut)
	cmd.SetArgs(args)
	return cmd.Execute()
}
