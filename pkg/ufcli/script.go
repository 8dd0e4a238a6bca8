package ufcli

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"disjoint_tool/pkg/errorutil"

	"github.com/tidwall/gjson"
)

// 脚本中支持的操作
const (
	OpUnion     = "union"
	OpFind      = "find"
	OpConnected = "connected"
)

var opArity = map[string]int{
	OpUnion:     2,
	OpFind:      1,
	OpConnected: 2,
}

// Op 脚本里的一条操作，操作数保持原样(数字或者顶点名)，执行时再解析
type Op struct {
	Line int
	Name string
	Args []string
}

func (o Op) String() string {
	return strings.TrimSpace(o.Name + " " + strings.Join(o.Args, " "))
}

func newOp(line int, name string, args []string) (Op, error) {
	name = strings.ToLower(name)
	arity, ok := opArity[name]
	if !ok {
		return Op{}, errorutil.WithLine(errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
			fmt.Sprintf("未知的操作 %q", name), nil), line)
	}
	if len(args) != arity {
		return Op{}, errorutil.WithLine(errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
			fmt.Sprintf("%s 需要 %d 个操作数，实际 %d 个", name, arity, len(args)), nil), line)
	}
	return Op{Line: line, Name: name, Args: args}, nil
}

// ParseScript 解析操作脚本，第一个非空字符是 { 或 [ 时按 JSON 解析，否则按文本解析
func ParseScript(raw []byte) ([]Op, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return ParseJSON(trimmed)
	}
	return ParseText(string(raw))
}

// ParseText 解析文本脚本，每行一条操作，# 之后是注释
//
//	union 1 2
//	find 4      # 注释
//	connected Zurich Bern
func ParseText(content string) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(strings.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		op, err := newOp(line, fields[0], fields[1:])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取脚本失败", err)
	}
	return ops, nil
}

// ParseJSON 支持两种写法:
//
//	{"ops":[{"op":"union","a":1,"b":2},{"op":"find","a":4}]}
//	[["union",1,2],["find",4]]
//
// 行号是操作在数组中的序号(从 1 开始)
func ParseJSON(raw []byte) ([]Op, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "脚本不是合法的 JSON", nil)
	}
	root := gjson.ParseBytes(raw)
	list := root
	if root.IsObject() {
		list = root.Get("ops")
	}
	if !list.IsArray() {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "JSON 脚本缺少 ops 数组", nil)
	}

	var ops []Op
	var parseErr error
	idx := 0
	list.ForEach(func(_, v gjson.Result) bool {
		idx++
		var name string
		var args []string
		switch {
		case v.IsArray():
			items := v.Array()
			if len(items) == 0 {
				parseErr = errorutil.WithLine(errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "空操作", nil), idx)
				return false
			}
			name = items[0].String()
			for _, it := range items[1:] {
				args = append(args, it.String())
			}
		case v.IsObject():
			name = v.Get("op").String()
			for _, key := range []string{"a", "b"} {
				if arg := v.Get(key); arg.Exists() {
					args = append(args, arg.String())
				}
			}
		default:
			parseErr = errorutil.WithLine(errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
				fmt.Sprintf("无法识别的操作 %s", v.Raw), nil), idx)
			return false
		}
		op, err := newOp(idx, name, args)
		if err != nil {
			parseErr = err
			return false
		}
		ops = append(ops, op)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return ops, nil
}
