package ufcli

import (
	"fmt"
	"io"
	"strconv"

	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/sh"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// OutputFormatter 把执行结果和引擎最终状态写到 w
type OutputFormatter interface {
	Format(w io.Writer, s *Session, results []Result, varName string) error
	// 执行失败时调用，清掉可能残留的输出
	Cleanup(w io.Writer, varName string)
}

type TextFormatter struct{}

func (TextFormatter) Cleanup(io.Writer, string) {}

func (TextFormatter) Format(w io.Writer, s *Session, results []Result, _ string) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, s.Describe(res)); err != nil {
			return errorutil.NewExitError(errorutil.CodeIOError, err)
		}
	}
	return nil
}

// JSONFormatter 输出结果和数组快照
//
//	{"config":"...","results":[{"line":1,"op":"find","args":[4],"root":1}],"representative":[...],"heuristic":[...]}
type JSONFormatter struct {
	Compact bool
}

func (JSONFormatter) Cleanup(io.Writer, string) {}

func (f JSONFormatter) Format(w io.Writer, s *Session, results []Result, _ string) error {
	doc, err := BuildJSON(s, results)
	if err != nil {
		return err
	}
	if !f.Compact {
		doc = pretty.Pretty(doc)
	} else {
		doc = append(pretty.Ugly(doc), '\n')
	}
	if _, err := w.Write(doc); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	return nil
}

// BuildJSON 用 sjson 逐个字段拼出结果文档
func BuildJSON(s *Session, results []Result) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, v)
		}
	}

	set("config", s.Config().String())
	set("size", s.Len())
	set("results", []any{})
	for _, res := range results {
		item := []byte(`{}`)
		item, err = sjson.SetBytes(item, "line", res.Op.Line)
		if err == nil {
			item, err = sjson.SetBytes(item, "op", res.Op.Name)
		}
		if err == nil {
			item, err = sjson.SetBytes(item, "args", res.Args)
		}
		switch {
		case err != nil:
		case res.Op.Name == OpFind:
			item, err = sjson.SetBytes(item, "root", res.Root)
		case res.Op.Name == OpConnected:
			item, err = sjson.SetBytes(item, "connected", res.Connected)
		}
		if err == nil {
			doc, err = sjson.SetRawBytes(doc, "results.-1", item)
		}
	}
	set("representative", s.Representative())
	set("heuristic", s.Heuristic())
	if s.Names != nil {
		for _, name := range s.Names.Names() {
			pos, _ := s.Names.Lookup(name)
			set("names.:"+strconv.Itoa(pos), name)
		}
		// 代表元数组里存放的记录
		for i, v := range s.Vertices() {
			set("records."+strconv.Itoa(i), map[string]any{"id": v.Key, "name": v.Name, "cost": v.Cost})
		}
	}
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 JSON 失败", err)
	}
	return doc, nil
}

// BashFormatter 输出可以 eval 的变量声明
//
//	unset -v RESULT ; declare -a RESULT=($'union 1 2' $'find 2 -> 1')
//	unset -v RESULT_REP ; declare -a RESULT_REP=($'1' $'1')
type BashFormatter struct{}

func (BashFormatter) Cleanup(w io.Writer, varName string) {
	if varName == "" {
		varName = "RESULT"
	}
	if sh.ValidName(varName) {
		fmt.Fprintf(w, "unset -v %s %s_REP %s_HEUR\n", varName, varName, varName)
	}
}

func (BashFormatter) Format(w io.Writer, s *Session, results []Result, varName string) error {
	if varName == "" {
		varName = "RESULT"
	}
	if !sh.ValidName(varName) {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			fmt.Sprintf("非法的变量名 %q", varName), nil)
	}
	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = s.Describe(res)
	}
	rep := s.Representative()
	repText := make([]string, len(rep))
	for i, v := range rep {
		repText[i] = strconv.FormatUint(v, 10)
	}
	heur := s.Heuristic()
	heurText := make([]string, len(heur))
	for i, v := range heur {
		heurText[i] = strconv.FormatUint(uint64(v), 10)
	}

	out := sh.DeclareArray(varName, lines) +
		sh.DeclareArray(varName+"_REP", repText) +
		sh.DeclareArray(varName+"_HEUR", heurText)
	if _, err := io.WriteString(w, out); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	return nil
}

var formatters = map[string]OutputFormatter{
	"txt":  TextFormatter{},
	"json": JSONFormatter{},
	"sh":   BashFormatter{},
}

// FormatterFor 按名字取格式化器
func FormatterFor(name string) (OutputFormatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			fmt.Sprintf("不支持的输出格式 %q (txt/json/sh)", name), nil)
	}
	return f, nil
}
