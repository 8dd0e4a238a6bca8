package diffutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// PadRight 按显示宽度补齐空格，中文等宽字符按 2 计算
// fmt 的宽度是按字符数算的，所以要补上 显示宽度 和 字符数 的差
func PadRight(s string, width int) string {
	cond := runewidth.NewCondition()
	// 模糊宽度字符(比如制表符线条)按照宽度1计算
	cond.EastAsianWidth = false
	w := cond.StringWidth(s)
	if w >= width {
		return s
	}
	return fmt.Sprintf("%-*s", utf8.RuneCountInString(s)+width-w, s)
}

// DisplayWidth 返回字符串的显示宽度
func DisplayWidth(s string) int {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return cond.StringWidth(s)
}

// FormatSideBySide 左右并排打印差异
func FormatSideBySide(diff []DiffLine, beforeTitle, afterTitle string) string {
	maxWidth := DisplayWidth("* " + beforeTitle)
	for _, d := range diff {
		if w := DisplayWidth(d.Left); w > maxWidth {
			maxWidth = w
		}
	}

	var out []string
	header := fmt.Sprintf("%s  %s  %s", PadRight("* "+beforeTitle, maxWidth), " ", "* "+afterTitle)
	out = append(out, header)
	out = append(out, strings.Repeat("-", DisplayWidth(header)))

	for _, d := range diff {
		out = append(out, fmt.Sprintf("%s  %s  %s", PadRight(d.Left, maxWidth), d.Mark, d.Right))
	}

	return strings.Join(out, "\n")
}
