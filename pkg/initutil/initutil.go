package initutil

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"disjoint_tool/pkg/logutil"
	"disjoint_tool/pkg/unionfind"
)

// Defaults 是配置文件里可以指定的默认值，命令行选项会覆盖它们
//
// 配置文件是简单的 key=value 格式，# 或 ; 开头的行是注释:
//
//	strategy=quickunion
//	heuristic=rank
//	compress=true
//	size=16
//	width=32
//	log_level=WARN
type Defaults struct {
	Strategy  unionfind.Kind
	Heuristic unionfind.HeuristicKind
	Compress  bool
	Size      int
	Width     int // 标识符位宽 8/16/32/64
	LogLevel  logutil.Level
}

// 内置的默认值
const (
	defaultSize  = 10
	defaultWidth = 32
)

func NewDefaults() Defaults {
	return Defaults{
		Strategy:  unionfind.KindQuickUnion,
		Heuristic: unionfind.HeuristicRank,
		Compress:  true,
		Size:      defaultSize,
		Width:     defaultWidth,
		LogLevel:  logutil.WARN,
	}
}

var once sync.Once

// InitSystem 初始化日志，只执行一次
func InitSystem(logFileName string, logLevel logutil.Level) {
	once.Do(func() {
		logutil.InitLogger(logFileName, logLevel)
		// 日志可能在初始化之前已经按默认级别打开过
		logutil.SetLogLevel(logLevel)
		logutil.Debug("system initialized, log=%s level=%s", logFileName, &logLevel)
	})
}

// LoadDefaults 读取配置文件，path 为空时直接返回内置默认值
// 缺失或非法的键回退到内置默认值，只有文件读不到时才返回错误
func LoadDefaults(path string) (Defaults, error) {
	d := NewDefaults()
	if path == "" {
		return d, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("无法打开配置文件 %s: %w", path, err)
	}
	d = ParseDefaults(string(raw))
	logutil.Debug("defaults loaded from %s: %v", path, d)
	return d, nil
}

// ParseDefaults 从配置内容中解析默认值
func ParseDefaults(content string) Defaults {
	d := NewDefaults()

	if v, ok := extractStringConfig(content, "strategy"); ok {
		if err := d.Strategy.Set(v); err != nil {
			logutil.Warn("配置 strategy=%s 非法，使用默认值 %s", v, string(d.Strategy))
		}
	}
	if v, ok := extractStringConfig(content, "heuristic"); ok {
		if err := d.Heuristic.Set(v); err != nil {
			logutil.Warn("配置 heuristic=%s 非法，使用默认值 %s", v, string(d.Heuristic))
		}
	}
	d.Compress = extractBoolConfig(content, "compress", d.Compress)
	d.Size = extractIntConfig(content, "size", d.Size)
	d.Width = extractIntConfig(content, "width", d.Width)
	if v, ok := extractStringConfig(content, "log_level"); ok {
		d.LogLevel = logutil.ParseLevel(v, d.LogLevel)
	}
	return d
}

// extractStringConfig 取出 key=value 的 value，注释行不匹配
func extractStringConfig(content, key string) (string, bool) {
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*([^;#\s]+)`)
	match := re.FindStringSubmatch(content)
	if len(match) > 1 {
		return match[1], true
	}
	return "", false
}

func extractIntConfig(content, key string, defaultVal int) int {
	v, ok := extractStringConfig(content, key)
	if !ok {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func extractBoolConfig(content, key string, defaultVal bool) bool {
	v, ok := extractStringConfig(content, key)
	if !ok {
		return defaultVal
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultVal
}
