package sh

import (
	"fmt"
	"regexp"
	"strings"
)

var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName 判断是否是合法的 Bash 变量名
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// 下面用来测试
// $'\a\b\t\n\v\f\r\E\\\'\000\001ABC中文'
// BashANSIQuote 将任意字符串转为 $'...' 形式的 ANSI-C 样式安全字符串
func BashANSIQuote(s string) string {
	var b strings.Builder
	b.WriteString("$'")

	for _, r := range s {
		switch r {
		case 27: // Escape (ASCII 27)
			b.WriteString(`\E`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			if r < 32 || r == 127 {
				// 对不可打印字符使用 \ooo 八进制转义
				b.WriteString(fmt.Sprintf(`\%03o`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteString("'")
	return b.String()
}

// Declare 生成 `unset -v NAME ; declare NAME=...`，先 unset 确保旧值不残留
func Declare(name, value string) string {
	return fmt.Sprintf("unset -v %s ; declare %s=%s\n", name, name, BashANSIQuote(value))
}

// DeclareArray 生成索引数组的声明
func DeclareArray(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = BashANSIQuote(v)
	}
	return fmt.Sprintf("unset -v %s ; declare -a %s=(%s)\n", name, name, strings.Join(quoted, " "))
}
