package diffutil

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 行标记
const (
	MarkEqual   = "|"
	MarkDelete  = "-"
	MarkInsert  = "+"
	MarkReplace = "~"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  string // "|", "+", "-", "~"
}

// CompareMultiline 按行比较两段文本，相邻的删除+插入合并成替换行
func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	i := 0
	for i < len(diffs) {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {

			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)

			for j := 0; j < max(len(delLines), len(insLines)); j++ {
				l, r := "", ""
				if j < len(delLines) {
					l = delLines[j]
				}
				if j < len(insLines) {
					r = insLines[j]
				}
				mark := MarkReplace
				if l == "" {
					mark = MarkInsert
				} else if r == "" {
					mark = MarkDelete
				}
				result = append(result, DiffLine{Left: l, Right: r, Mark: mark})
			}
			i += 2
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: MarkEqual})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Right: "", Mark: MarkDelete})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Left: "", Right: line, Mark: MarkInsert})
			}
		}
		i++
	}
	return result
}

// splitLines 去掉空行
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Changed 判断是否存在不相等的行
func Changed(diff []DiffLine) bool {
	for _, d := range diff {
		if d.Mark != MarkEqual {
			return true
		}
	}
	return false
}

// SlotChange 一个数组位置上的变化
type SlotChange struct {
	Pos    int
	Before string
	After  string
}

func (c SlotChange) String() string {
	return fmt.Sprintf("[%d] %s -> %s", c.Pos, c.Before, c.After)
}

// CompareSlots 逐个位置比较两个数组，长度不同时多出的位置按空值处理
func CompareSlots[E comparable](before, after []E) []SlotChange {
	var out []SlotChange
	for i := 0; i < max(len(before), len(after)); i++ {
		var b, a string
		var bv, av E
		if i < len(before) {
			bv = before[i]
			b = fmt.Sprint(bv)
		}
		if i < len(after) {
			av = after[i]
			a = fmt.Sprint(av)
		}
		if i < len(before) && i < len(after) && bv == av {
			continue
		}
		out = append(out, SlotChange{Pos: i, Before: b, After: a})
	}
	return out
}
