package main

import (
	"fmt"
	"os"

	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/logutil"
	"disjoint_tool/pkg/ufcli"
)

const TOOL_VERSION = "1.0.0+20261014"

func main() {
	rootCmd := ufcli.NewRootCmd(TOOL_VERSION)

	if err := rootCmd.Execute(); err != nil {
		logutil.Error("命令执行失败: %v", err)
		msg, code := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(os.Stderr, msg)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
