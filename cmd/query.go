package cmd

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/dustin/go-humanize"
	cmdutil "github.com/qianniaoge/watchman/cmd/util"
	"github.com/qianniaoge/watchman/config"
	"github.com/qianniaoge/watchman/query"
	"github.com/qianniaoge/watchman/query/term"
	"github.com/qianniaoge/watchman/walker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func queryCommand() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query <path> <expression>",
		Short: "Lists the files under <path> that satisfy <expression>",
		Long: `Lists the files under <path> that satisfy <expression>, a JSON-encoded
query expression like '["name", "foo.c"]' or
'["allof", ["type", "f"], ["iname", ["README.md", "readme.txt"]]]'.
Pass "-" as the expression to read it from stdin.`,
		Args: cobra.ExactArgs(2),
	}

	queryCmd.Flags().String("loglevel", "warn", "Set the logging level")
	_ = viper.BindPFlag("loglevel", queryCmd.Flags().Lookup("loglevel"))
	queryCmd.Flags().BoolP("case-insensitive", "i", false, "Compare names case-insensitively by default")
	queryCmd.Flags().Int("maxdepth", walker.DefaultMaxdepth, "Descend at most this many levels below the path")
	queryCmd.Flags().BoolP("long", "l", false, "Print each match's size and mtime")

	queryCmd.RunE = toRunE(queryMain)

	return queryCmd
}

func queryMain(cmd *cobra.Command, args []string) exitCode {
	loglevel := viper.GetString("loglevel")
	level, err := cmdutil.ParseLevel(loglevel)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	log.SetLevel(level)

	path := args[0]
	rawExpr := args[1]
	if rawExpr == "-" {
		input, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			cmdutil.ErrPrintf("could not read the expression from stdin: %v\n", err)
			return exitCode{1}
		}
		rawExpr = string(input)
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(rawExpr), &raw); err != nil {
		cmdutil.ErrPrintf("the expression must be valid JSON: %v\n", err)
		return exitCode{1}
	}

	cs := query.CaseSensitive
	if insensitive, _ := cmd.Flags().GetBool("case-insensitive"); insensitive {
		cs = query.CaseInSensitive
	}
	q, err := term.Compile(raw, cs)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	log.WithFields(log.Fields{"query": q.ID}).Infof("Compiled a %v query", q.CaseSensitive)

	opts := walker.NewOptions()
	opts.Parallel = config.Parallel
	opts.Maxdepth, _ = cmd.Flags().GetInt("maxdepth")

	matches, err := walker.Walk(context.Background(), path, q, opts)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	long, _ := cmd.Flags().GetBool("long")
	for _, e := range matches {
		if long {
			cmdutil.Printf("%10v  %v  %v\n", humanize.Bytes(uint64(e.Size)), e.MTime.Format("Jan _2 15:04"), e.Path)
		} else {
			cmdutil.Println(e.Path)
		}
	}

	return exitCode{0}
}
