package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/strtable/parse"
	"github.com/dzjyyds666/strtable/pkg"
	"github.com/spf13/cobra"
)

type NamesParams struct {
	Ignore  []string `json:"ignore"` // 忽略的行
	Verbose bool     `json:"verbose"`
}

func newNamesCmd() *cobra.Command {
	params := &NamesParams{}
	cmd := &cobra.Command{
		Use:   "names <known-file>",
		Short: "Print string names from stdin that are not in a known-names file",
		Long: `The names command loads the string names of a known-names file and copies
every line of stdin that is not one of them to stdout, once.

Example:
  ./run-game.sh 2>&1 | strtable names strings.txt`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(cmd, params, args[0])
		},
	}
	cmd.Flags().StringArrayVar(&params.Ignore, "ignore", nil, "line to skip, may be repeated")
	cmd.Flags().BoolVarP(&params.Verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runNames(cmd *cobra.Command, params *NamesParams, known string) error {
	logger := newLogger(cmd.ErrOrStderr(), params.Verbose)

	exist, err := pkg.CheckFileExist(known)
	if err != nil {
		return fmt.Errorf("check file exist error: %w", err)
	}
	if !exist {
		return fmt.Errorf("known-names file %s not exist", known)
	}
	f, err := os.Open(known)
	if err != nil {
		return err
	}
	idx, err := parse.LoadNames(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Info("loaded names", "names", idx.Len(), "lines", idx.Lines())

	added, err := idx.Merge(cmd.InOrStdin(), cmd.OutOrStdout(), params.Ignore)
	if err != nil {
		return err
	}
	logger.Info("done", "new", added)
	return nil
}
