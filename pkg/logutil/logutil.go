package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Level 日志级别，值越小打印得越多
type Level int

// 定义日志级别
const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

// 实现 pflag.Value 接口，cobra 可以直接用 VarP 绑定
func (l *Level) String() string {
	for name, v := range LOG_LEVELS {
		if v == *l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(*l))
}

func (l *Level) Set(val string) error {
	v, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(val))]
	if !ok {
		return fmt.Errorf("无效的日志级别: %s", val)
	}
	*l = v
	return nil
}

func (l *Level) Type() string { return "level" }

// ParseLevel 解析日志级别字符串，解析失败返回 def
func ParseLevel(val string, def Level) Level {
	l := def
	if err := l.Set(val); err != nil {
		return def
	}
	return l
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	once         sync.Once
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，允许指定输出目标（stdout/stderr 或 文件）
// 只有第一次调用生效
func InitLogger(output string, level Level) {
	once.Do(func() {
		var err error
		switch output {
		case "stdout", "":
			logFile = os.Stdout
		case "stderr":
			logFile = os.Stderr
		default:
			logFile, err = os.OpenFile(
				// 以追加模式打开日志文件，不会覆盖已有内容
				output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatal("无法创建日志文件:", err)
			}
		}
		mu.Lock()
		logger = log.New(logFile, "", log.LstdFlags)
		currentLevel = level
		mu.Unlock()
	})
}

// SetOutput 直接替换输出目标，测试里用来捕获日志
func SetOutput(w io.Writer) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level Level, msg string, args ...any) {
	mu.Lock()
	l, cur := logger, currentLevel
	mu.Unlock()
	if level < cur {
		return
	}
	if l == nil {
		InitLogger("stderr", cur) // 默认输出到标准错误，不污染命令的输出
		mu.Lock()
		l = logger
		mu.Unlock()
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	file = filepath.Base(file)

	formattedArgs := make([]any, 0, len(args))
	for _, arg := range args {
		formattedArgs = append(formattedArgs, formatArg(arg))
	}
	l.Printf("[%s:%d] %s", file, line, fmt.Sprintf(msg, formattedArgs...))
}

// formatArg 结构体按字段展开，切片和字典转成 JSON，其它原样返回
func formatArg(arg any) any {
	if arg == nil {
		return arg
	}
	if _, ok := arg.(fmt.Stringer); ok {
		return arg
	}
	if _, ok := arg.(error); ok {
		return arg
	}
	v := reflect.ValueOf(arg)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return arg
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return PrintStruct(v.Interface(), false)
	case reflect.Slice, reflect.Map:
		jsonData, err := json.Marshal(arg)
		if err != nil {
			return fmt.Sprintf("无法格式化: %v", err)
		}
		return string(jsonData)
	}
	return arg
}

// 设置日志级别
func SetLogLevel(level Level) {
	mu.Lock()
	currentLevel = level
	mu.Unlock()
}

// GetLogLevel 返回当前日志级别
func GetLogLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志
func Error(msg string, args ...any) {
	logMessage(ERROR, "[ERR] "+msg, args...)
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	if logFile != nil && logFile != os.Stdout && logFile != os.Stderr {
		return logFile.Close()
	}
	return nil
}

// 递归格式化结构体信息
func formatStruct(s any, indent string) string {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%s非结构体类型: %#v\n", indent, v.Kind())
	}
	t := v.Type()

	var builder strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if value.Kind() != reflect.Struct || !field.IsExported() {
			builder.WriteString(fmt.Sprintf("%s%s: %#v\n", indent, field.Name, value))
		} else {
			// 如果是嵌套结构体,先打印标头,再递归处理
			builder.WriteString(fmt.Sprintf("%s%s:\n", indent, field.Name))
			builder.WriteString(formatStruct(value.Interface(), indent+"    "))
		}
	}

	return builder.String()
}

// 打印结构体信息（支持控制是否输出到标准输出）
func PrintStruct(s any, printToStdout bool) string {
	result := formatStruct(s, "")
	if printToStdout {
		fmt.Print(result)
	}
	return result
}
