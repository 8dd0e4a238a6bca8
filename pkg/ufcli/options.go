package ufcli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/forestprint"
	"disjoint_tool/pkg/initutil"
	"disjoint_tool/pkg/unionfind"

	"github.com/spf13/cobra"
)

// GlobalOptions 根命令上的全局选项，Defaults 在 PersistentPreRunE 中从配置文件加载
type GlobalOptions struct {
	ConfigFile string
	Defaults   initutil.Defaults
}

// EngineOptions 每个子命令共用的引擎和脚本选项
type EngineOptions struct {
	Strategy  unionfind.Kind
	Heuristic unionfind.HeuristicKind
	Compress  bool
	Size      int
	Width     int
	Vertices  string
	Exec      string
	Unicode   bool
}

func addEngineFlags(cmd *cobra.Command, opts *EngineOptions) {
	d := initutil.NewDefaults()
	opts.Strategy = d.Strategy
	opts.Heuristic = d.Heuristic

	cmd.Flags().VarP(&opts.Strategy, "strategy", "s",
		fmt.Sprintf("合并策略(%s)", strings.Join(opts.Strategy.Values(), "/")))
	cmd.Flags().VarP(&opts.Heuristic, "heuristic", "H",
		fmt.Sprintf("Quick-Union 的链接启发式(%s)", strings.Join(opts.Heuristic.Values(), "/")))
	cmd.Flags().BoolVarP(&opts.Compress, "compress", "p", d.Compress, "Quick-Union 查找时做路径压缩(折半)")
	cmd.Flags().IntVarP(&opts.Size, "size", "n", d.Size, "全集大小 N")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", d.Width, fmt.Sprintf("标识符位宽 %v", Widths()))
	cmd.Flags().StringVarP(&opts.Vertices, "vertices", "V", "", "顶点 JSON 文件，指定后全集由文件决定，操作数可以写顶点名")
	cmd.Flags().StringVarP(&opts.Exec, "exec", "x", "", "直接在参数中给出脚本，多条操作用 ; 分隔")
	cmd.Flags().BoolVarP(&opts.Unicode, "unicode", "u", false, "用 Unicode 线条画树")
}

// applyDefaults 命令行没有显式指定的选项使用配置文件的值
func (o *EngineOptions) applyDefaults(cmd *cobra.Command, d initutil.Defaults) {
	flags := cmd.Flags()
	if !flags.Changed("strategy") {
		o.Strategy = d.Strategy
	}
	if !flags.Changed("heuristic") {
		o.Heuristic = d.Heuristic
	}
	if !flags.Changed("compress") {
		o.Compress = d.Compress
	}
	if !flags.Changed("size") {
		o.Size = d.Size
		if o.Vertices != "" {
			o.Size = 0
		}
	}
	if !flags.Changed("width") {
		o.Width = d.Width
	}
}

// Config 由选项得到引擎配置
func (o *EngineOptions) Config() unionfind.Config {
	heur := o.Heuristic
	if o.Strategy == unionfind.KindQuickFind {
		heur = unionfind.HeuristicUnweighted
	}
	return unionfind.Config{
		Strategy:        o.Strategy,
		Heuristic:       heur,
		PathCompression: o.Compress,
		Size:            o.Size,
	}
}

func (o *EngineOptions) style() int {
	if o.Unicode {
		return forestprint.StyleUnicode
	}
	return forestprint.StyleASCII
}

// NewSession 按选项创建会话，指定了顶点文件时进入顶点模式
func (o *EngineOptions) NewSession() (*Session, error) {
	cfg := o.Config()
	if o.Vertices == "" {
		return NewSession(cfg, o.Width)
	}
	records, err := LoadVertices(o.Vertices)
	if err != nil {
		return nil, err
	}
	return NewVertexSession(cfg, records)
}

// ReadScript 读取脚本，优先 --exec，其次位置参数指定的文件，- 或者没有参数时读标准输入
func (o *EngineOptions) ReadScript(cmd *cobra.Command, args []string) ([]Op, error) {
	if o.Exec != "" {
		script := o.Exec
		if t := strings.TrimSpace(script); !strings.HasPrefix(t, "{") && !strings.HasPrefix(t, "[") {
			script = strings.ReplaceAll(script, ";", "\n")
		}
		return ParseScript([]byte(script))
	}
	var raw []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "无法读取脚本", err)
	}
	return ParseScript(raw)
}
