package errorutil

import (
	"encoding/json"
	"errors"
	"fmt"

	"disjoint_tool/pkg/unionfind"
)

const (
	CodeSuccess = 0 // 成功执行

	// 60–69: 用户输入或调用错误
	CodeInvalidUsage = 64 // 命令行用法错误（参数不合法等）
	CodeMissingInput = 65 // 缺失必须输入（如脚本、顶点文件等）
	CodeInvalidData  = 66 // 用户输入格式错误（数据非法）
	CodeOutOfRange   = 69 // 元素标识符越界

	// 70–79: 程序自身或依赖错误
	CodeIOError     = 72 // 文件读写失败
	CodeInternalErr = 74 // 内部 bug、panic、未捕捉异常

	// 80–89: 配置相关错误
	CodeConfigError = 80 // 配置文件有误或引擎参数不匹配
)

// omitempty 的作用是空字段不出现
type ExitErrorWithCode struct {
	Code    int    `json:"code"`              // 框架/业务层级错误码
	Message string `json:"message,omitempty"` // 可读消息
	Line    int    `json:"line,omitempty"`    // 出错的脚本行号（仅在执行脚本时填充）
	Err     error  `json:"-"`
}

func (e *ExitErrorWithCode) Error() string {
	if e.Err != nil {
		if e.Message != "" {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Exit with code: %d", e.Code)
}

func (e *ExitErrorWithCode) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) error {
	return &ExitErrorWithCode{Code: code, Err: err}
}

// 带错误消息的错误
func NewExitErrorWithMessage(code int, message string, err error) error {
	return &ExitErrorWithCode{Code: code, Message: message, Err: err}
}

// FromEngineError 把引擎的哨兵错误映射成退出码
// 已经带退出码的错误原样返回
func FromEngineError(message string, err error) error {
	if err == nil {
		return nil
	}
	if HasExitCode(err) {
		return err
	}
	code := CodeInternalErr
	switch {
	case errors.Is(err, unionfind.ErrOutOfRange):
		code = CodeOutOfRange
	case errors.Is(err, unionfind.ErrInvalidData), errors.Is(err, unionfind.ErrCorrupt):
		code = CodeInvalidData
	case errors.Is(err, unionfind.ErrConfig), errors.Is(err, unionfind.ErrCapacity):
		code = CodeConfigError
	}
	return &ExitErrorWithCode{Code: code, Message: message, Err: err}
}

// WithLine 给错误补上脚本行号
func WithLine(err error, line int) error {
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		exitErr.Line = line
		return exitErr
	}
	return &ExitErrorWithCode{Code: CodeInternalErr, Line: line, Err: err}
}

// os.Exit(errorutil.ExitCodeFromError(err))
func ExitCodeFromError(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeInternalErr
}

// msg := errorutil.UserMessage(err)
func UserMessage(err error) string {
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.Message
	}
	return ""
}

// 判断当前的错误是否是带退出码的错误
func HasExitCode(err error) bool {
	var exitErr *ExitErrorWithCode
	return errors.As(err, &exitErr)
}

// 提取原始错误
func RootError(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

func (e *ExitErrorWithCode) JSON() string {
	type jsonErr struct {
		Code    int    `json:"code"`
		Message string `json:"message,omitempty"`
		Err     string `json:"error,omitempty"`
		Line    int    `json:"line,omitempty"`
	}

	data := jsonErr{
		Code:    e.Code,
		Message: e.Message,
		Line:    e.Line,
	}
	if e.Err != nil {
		data.Err = e.Err.Error()
	}
	jsonBytes, _ := json.Marshal(data)
	return string(jsonBytes)
}

func FormatErrorAndCode(err error) (string, int) {
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.JSON(), exitErr.Code
	}
	// 构建一个临时 ExitErrorWithCode 对象，并直接调用其 JSON() 方法
	return (&ExitErrorWithCode{
		Code:    CodeInternalErr,
		Message: "未知错误",
		Err:     err,
	}).JSON(), CodeInternalErr
}
