package ufcli

import (
	"fmt"
	"strings"

	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/initutil"
	"disjoint_tool/pkg/logutil"

	"github.com/spf13/cobra"
)

// NewRootCmd 构造 ufctl 的根命令和全部子命令
func NewRootCmd(version string) *cobra.Command {
	global := &GlobalOptions{Defaults: initutil.NewDefaults()}
	var logFile string
	logLevel := logutil.WARN

	rootCmd := &cobra.Command{
		Use:   "ufctl",
		Short: fmt.Sprintf("ufctl v%s 在固定全集上执行合并/查找脚本，并查看并查集的内部数组", version),
		Long: fmt.Sprintf("ufctl v%s 在固定全集上执行合并/查找脚本\n\n", version) +
			"支持 Quick-Find 和 Quick-Union 两种策略，Quick-Union 可以选择\n" +
			"unweighted/rank/size 三种链接启发式以及路径压缩。\n",
	}

	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "stderr", "日志文件名(stdout/stderr 表示标准输出/标准错误)")
	rootCmd.PersistentFlags().StringVarP(&global.ConfigFile, "config", "c", "", "默认值配置文件(key=value 格式)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	// flag 值填充后再加载配置和初始化日志
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		d, err := initutil.LoadDefaults(global.ConfigFile)
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "加载配置失败", err)
		}
		global.Defaults = d
		if !cmd.Flags().Changed("log-level") {
			logLevel = d.LogLevel
		}
		initutil.InitSystem(logFile, logLevel)
		return nil
	}

	rootCmd.AddCommand(
		RunCmd(global),
		ShowCmd(global),
		DotCmd(global),
		TraceCmd(global),
		VersionCmd(version),
	)
	return rootCmd
}

// prepare 合并默认值，创建会话并读取脚本
func prepare(cmd *cobra.Command, args []string, global *GlobalOptions, opts *EngineOptions) (*Session, []Op, error) {
	opts.applyDefaults(cmd, global.Defaults)
	s, err := opts.NewSession()
	if err != nil {
		return nil, nil, err
	}
	ops, err := opts.ReadScript(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	logutil.Debug("session %v, %d operations", s.Config(), len(ops))
	return s, ops, nil
}

func RunCmd(global *GlobalOptions) *cobra.Command {
	opts := &EngineOptions{}
	var format, varName string
	var compact bool

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "执行脚本并输出每条操作的结果",
		Long: `执行脚本并输出每条操作的结果

脚本可以是文本:
	union 1 2
	find 2        # 注释
	connected 1 2

也可以是 JSON:
	{"ops":[{"op":"union","a":1,"b":2},{"op":"find","a":2}]}
	[["union",1,2],["find",2]]

Examples:
	ufctl run -n 10 -x "union 1 2; find 2"
	ufctl run -s quickfind -n 10 script.txt
	ufctl run -V cities.json -f json -x "union Zurich Bern"
	eval -- "$(ufctl run -n 4 -f sh -v uf -x 'union 0 1')"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := FormatterFor(format)
			if err != nil {
				return err
			}
			if f, ok := formatter.(JSONFormatter); ok {
				f.Compact = compact
				formatter = f
			}
			s, ops, err := prepare(cmd, args, global, opts)
			if err != nil {
				formatter.Cleanup(cmd.OutOrStdout(), varName)
				return err
			}
			results, err := Execute(s, ops, nil)
			if err != nil {
				formatter.Cleanup(cmd.OutOrStdout(), varName)
				return err
			}
			return formatter.Format(cmd.OutOrStdout(), s, results, varName)
		},
	}
	addEngineFlags(cmd, opts)
	cmd.Flags().StringVarP(&format, "format", "f", "txt", "输出格式(txt/json/sh)")
	cmd.Flags().StringVarP(&varName, "var", "v", "RESULT", "sh 格式下的变量名")
	cmd.Flags().BoolVar(&compact, "compact", false, "json 格式输出到一行")
	return cmd
}

func ShowCmd(global *GlobalOptions) *cobra.Command {
	opts := &EngineOptions{}
	var paths []string

	cmd := &cobra.Command{
		Use:   "show [script]",
		Short: "执行脚本后打印数组、分组和森林",
		Example: `	ufctl show -n 6 -x "union 0 1; union 2 3; union 1 3"
	ufctl show -n 6 -x "union 0 1; union 1 2" --path 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ops, err := prepare(cmd, args, global, opts)
			if err != nil {
				return err
			}
			if _, err := Execute(s, ops, nil); err != nil {
				return err
			}
			out, err := RenderShow(s, opts.style())
			if err != nil {
				return errorutil.FromEngineError("无法渲染结果", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			for _, p := range paths {
				v, err := s.Resolve(p)
				if err != nil {
					return err
				}
				if v >= uint64(s.Len()) {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeOutOfRange,
						fmt.Sprintf("路径起点 %d 越界 [0, %d)", v, s.Len()), nil)
				}
				path, err := RenderPath(s, int(v))
				if err != nil {
					return errorutil.FromEngineError("无法渲染路径", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "path %s\n", path)
			}
			return nil
		},
	}
	addEngineFlags(cmd, opts)
	cmd.Flags().StringSliceVar(&paths, "path", nil, "打印这些元素到根的路径")
	return cmd
}

func DotCmd(global *GlobalOptions) *cobra.Command {
	opts := &EngineOptions{}

	cmd := &cobra.Command{
		Use:     "dot [script]",
		Short:   "执行脚本后以 graphviz DOT 格式输出森林",
		Example: `	ufctl dot -n 6 -x "union 0 1; union 2 3" | dot -Tpng -o forest.png`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ops, err := prepare(cmd, args, global, opts)
			if err != nil {
				return err
			}
			if _, err := Execute(s, ops, nil); err != nil {
				return err
			}
			out, err := RenderDOT(s)
			if err != nil {
				return errorutil.FromEngineError("无法生成 DOT", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addEngineFlags(cmd, opts)
	return cmd
}

func TraceCmd(global *GlobalOptions) *cobra.Command {
	opts := &EngineOptions{}

	cmd := &cobra.Command{
		Use:     "trace [script]",
		Short:   "逐条执行脚本，打印每条操作改动的槽位和森林的前后对比",
		Example: `	ufctl trace -n 5 -H unweighted -x "union 0 1; union 1 2; find 0"`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ops, err := prepare(cmd, args, global, opts)
			if err != nil {
				return err
			}
			style := opts.style()
			prev, err := TakeSnapshot(s, style)
			if err != nil {
				return errorutil.FromEngineError("无法渲染森林", err)
			}
			out := cmd.OutOrStdout()
			_, err = Execute(s, ops, func(res Result) error {
				next, err := TakeSnapshot(s, style)
				if err != nil {
					return errorutil.FromEngineError("无法渲染森林", err)
				}
				fmt.Fprint(out, RenderTraceStep(s, res, prev, next))
				prev = next
				return nil
			})
			return err
		},
	}
	addEngineFlags(cmd, opts)
	return cmd
}

func VersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本号",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ufctl %s\n", strings.TrimSpace(version))
			return nil
		},
	}
}
