package main

import (
	"fmt"
	"os"

	"yunion.io/x/structarg"

	"github.com/mrchi/tencentcloud-clb-helper/pkg/clb"
	_ "github.com/mrchi/tencentcloud-clb-helper/pkg/clb/shell"
	"github.com/mrchi/tencentcloud-clb-helper/pkg/util/shellutils"
)

type BaseOptions struct {
	Debug      bool   `help:"debug mode"`
	SecretId   string `help:"Tencent Cloud secret id" default:"$CLB_SECRET_ID" metavar:"CLB_SECRET_ID"`
	SecretKey  string `help:"Tencent Cloud secret key" default:"$CLB_SECRET_KEY" metavar:"CLB_SECRET_KEY"`
	Region     string `help:"Tencent Cloud region" default:"$CLB_REGION" metavar:"CLB_REGION"`
	SUBCOMMAND string `help:"clbcli subcommand" subcommand:"true"`
}

func getSubcommandParser() (*structarg.ArgumentParser, error) {
	parse, e := structarg.NewArgumentParserWithHelp(&BaseOptions{},
		"clbcli",
		"Command-line interface to Tencent Cloud CLB API.",
		`See "clbcli COMMAND --help" for help on a specific command.`)

	if e != nil {
		return nil, e
	}

	subcmd := parse.GetSubcommand()
	if subcmd == nil {
		return nil, fmt.Errorf("No subcommand argument.")
	}
	for _, v := range shellutils.CommandTable {
		_, e := subcmd.AddSubParserWithHelp(v.Options, v.Command, v.Desc, v.Callback)
		if e != nil {
			return nil, e
		}
	}
	return parse, nil
}

func showErrorAndExit(e error) {
	fmt.Fprintf(os.Stderr, "%s", e)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

// 命令行参数和环境变量优先，缺失时回落到配置文件
func newClient(options *BaseOptions) (*clb.SClbClient, error) {
	secretId := options.SecretId
	secretKey := options.SecretKey
	region := options.Region

	if len(secretId) == 0 || len(secretKey) == 0 || len(region) == 0 {
		conf, err := clb.LoadConfig()
		if err != nil {
			// 缺 region 可以用默认地域，缺密钥不行
			if len(secretId) == 0 || len(secretKey) == 0 {
				return nil, fmt.Errorf("Missing credentials: %s", err)
			}
		} else {
			if len(secretId) == 0 {
				secretId = conf.SecretID
			}
			if len(secretKey) == 0 {
				secretKey = conf.SecretKey
			}
			if len(region) == 0 {
				region = conf.Region
			}
		}
	}

	if len(secretId) == 0 {
		return nil, fmt.Errorf("Missing secret id")
	}

	if len(secretKey) == 0 {
		return nil, fmt.Errorf("Missing secret key")
	}

	return clb.NewClbClient(secretId, secretKey, region, options.Debug)
}

func main() {
	parser, e := getSubcommandParser()
	if e != nil {
		showErrorAndExit(e)
	}
	e = parser.ParseArgs(os.Args[1:], false)
	options := parser.Options().(*BaseOptions)

	if parser.IsHelpSet() {
		fmt.Print(parser.HelpString())
		return
	}
	subcmd := parser.GetSubcommand()
	subparser := subcmd.GetSubParser()
	if e != nil || subparser == nil {
		if subparser != nil {
			fmt.Print(subparser.Usage())
		} else {
			fmt.Print(parser.Usage())
		}
		showErrorAndExit(e)
	}
	suboptions := subparser.Options()
	if subparser.IsHelpSet() {
		fmt.Print(subparser.HelpString())
		return
	}
	var client *clb.SClbClient
	client, e = newClient(options)
	if e != nil {
		showErrorAndExit(e)
	}
	e = subcmd.Invoke(client, suboptions)
	if e != nil {
		showErrorAndExit(e)
	}
}
