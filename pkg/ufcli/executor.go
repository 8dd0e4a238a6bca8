package ufcli

import (
	"fmt"

	"disjoint_tool/pkg/errorutil"
	"disjoint_tool/pkg/logutil"
)

// Result 一条操作的执行结果
// find 填 Root，connected 填 Connected，union 两者都不填
type Result struct {
	Op        Op
	Args      []uint64
	Root      uint64
	Connected bool
}

// Step 每条操作执行成功后回调，返回错误会中止执行
type Step func(res Result) error

// Execute 依次执行操作，遇到第一个错误就停止并返回已经完成的结果
// 出错的那条操作不会修改引擎状态
func Execute(s *Session, ops []Op, step Step) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		res, err := executeOne(s, op)
		if err != nil {
			logutil.Error("line %d: %s failed: %v", op.Line, op, err)
			return results, errorutil.WithLine(err, op.Line)
		}
		logutil.Debug("line %d: %s", op.Line, s.Describe(res))
		results = append(results, res)
		if step != nil {
			if err := step(res); err != nil {
				return results, err
			}
		}
	}
	logutil.Info("executed %d operations on %v", len(results), s.Config())
	return results, nil
}

func executeOne(s *Session, op Op) (Result, error) {
	res := Result{Op: op, Args: make([]uint64, len(op.Args))}
	for i, arg := range op.Args {
		v, err := s.Resolve(arg)
		if err != nil {
			return res, err
		}
		res.Args[i] = v
	}

	var err error
	switch op.Name {
	case OpUnion:
		err = s.Union(res.Args[0], res.Args[1])
	case OpFind:
		res.Root, err = s.Find(res.Args[0])
	case OpConnected:
		res.Connected, err = s.Connected(res.Args[0], res.Args[1])
	default:
		return res, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, fmt.Sprintf("未知的操作 %q", op.Name), nil)
	}
	if err != nil {
		return res, errorutil.FromEngineError(fmt.Sprintf("%s 执行失败", op), err)
	}
	return res, nil
}

// Describe 结果的单行文本
//
//	union 1 2
//	find 4 -> 1
//	connected 1 3 -> true
func (s *Session) Describe(res Result) string {
	text := res.Op.Name
	for _, a := range res.Args {
		text += " " + s.Label(int(a))
	}
	switch res.Op.Name {
	case OpFind:
		text += " -> " + s.Label(int(res.Root))
	case OpConnected:
		text += fmt.Sprintf(" -> %t", res.Connected)
	}
	return text
}
