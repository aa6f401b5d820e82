package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dzjyyds666/strtable/parse"
	"github.com/dzjyyds666/strtable/parse/table"
	"github.com/dzjyyds666/strtable/pkg"
	"github.com/spf13/cobra"
)

type BuildParams struct {
	Root    string `json:"root"`     // 要输出的根名字
	Output  string `json:"output"`   // 输出文件地址
	Format  string `json:"format"`   // lua 或 yaml
	Strict  bool   `json:"strict"`   // 重复的名字报错
	Quiet   bool   `json:"quiet"`    // 不打印被跳过的行
	NoColor bool   `json:"no_color"` // 关闭颜色
	Verbose bool   `json:"verbose"`
}

const (
	formatLua  = "lua"
	formatYAML = "yaml"
)

var errNoRoot = errors.New("no root given")

func newBuildCmd() *cobra.Command {
	params := &BuildParams{}
	cmd := &cobra.Command{
		Use:   "build [file...]",
		Short: "Merge string assignments into one nested table",
		Long: `The build command reads string assignments from the given files, or from
stdin when none are given, and prints them as one nested table.

Example:
  strtable build strings.txt
  cat *.txt | strtable build --root level_editor
  strtable build a.txt b.txt --format yaml -o table.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, params, args)
		},
	}
	cmd.Flags().StringVarP(&params.Root, "root", "r", "", "root name to print (default: the only root in the input)")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	cmd.Flags().StringVarP(&params.Format, "format", "f", formatLua, "output format: lua or yaml")
	cmd.Flags().BoolVar(&params.Strict, "strict", false, "fail when a string name is assigned twice")
	cmd.Flags().BoolVarP(&params.Quiet, "quiet", "q", false, "do not print skipped lines")
	cmd.Flags().BoolVar(&params.NoColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&params.Verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runBuild(cmd *cobra.Command, params *BuildParams, args []string) error {
	if params.Format != formatLua && params.Format != formatYAML {
		return fmt.Errorf("unknown format %q", params.Format)
	}
	logger := newLogger(cmd.ErrOrStderr(), params.Verbose)
	diags := newDiagPrinter(cmd.ErrOrStderr(), params.NoColor, params.Quiet)

	records, err := readInputs(cmd.InOrStdin(), args, diags.report, logger)
	if err != nil {
		return err
	}
	logger.Debug("read input", "records", len(records), "skipped", diags.count)

	opts := table.Options{Duplicates: table.DuplicateLastWins}
	if params.Strict {
		opts.Duplicates = table.DuplicateReject
	}
	root, err := table.Build(records, opts)
	if err != nil {
		return err
	}

	label, err := pickRoot(root, params.Root)
	if err != nil {
		return err
	}
	logger.Debug("print table", "root", label, "leaves", table.CountLeaves(root.Items[label]), "format", params.Format)

	var buf bytes.Buffer
	switch params.Format {
	case formatYAML:
		out, err := table.MarshalYAML(root, label)
		if err != nil {
			return err
		}
		buf.Write(out)
	default:
		if err := table.Print(&buf, root, label); err != nil {
			return err
		}
	}

	w, err := pkg.OpenOutput(params.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// readInputs reads every path in order; no paths or "-" means stdin.
func readInputs(stdin io.Reader, paths []string, report func(*parse.Diagnostic), logger *slog.Logger) ([]parse.Record, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var records []parse.Record
	for _, path := range paths {
		if path == "-" {
			recs, err := parse.ReadRecords(stdin, parse.StdinSource, report)
			if err != nil {
				return nil, err
			}
			records = append(records, recs...)
			continue
		}

		exist, err := pkg.CheckFileExist(path)
		if err != nil {
			return nil, fmt.Errorf("check file exist error: %w", err)
		}
		if !exist {
			return nil, fmt.Errorf("input file %s not exist", path)
		}
		recs, err := readFile(path, report)
		if err != nil {
			return nil, err
		}
		logger.Debug("read file", "path", path, "records", len(recs))
		records = append(records, recs...)
	}
	return records, nil
}

func readFile(path string, report func(*parse.Diagnostic)) ([]parse.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.ReadRecords(f, path, report)
}

// pickRoot returns want, or the single root of the tree when want is empty.
func pickRoot(root *table.Table, want string) (string, error) {
	if want != "" {
		if _, err := table.Lookup(root, want); err != nil {
			return "", err
		}
		return want, nil
	}
	keys := table.Keys(root)
	switch len(keys) {
	case 1:
		return keys[0], nil
	case 0:
		return "", fmt.Errorf("%w: input has no string names", errNoRoot)
	default:
		return "", fmt.Errorf("%w: input has roots %s, pick one with --root", errNoRoot, strings.Join(keys, ", "))
	}
}
