package ufcli

import (
	"fmt"
	"math"
	"os"

	"disjoint_tool/pkg/errorutil"

	"github.com/tidwall/gjson"
)

// Vertex 顶点文件中的一条记录
//
//	[{"id":0,"name":"Zurich","cost":320},{"id":1,"name":"Bern","cost":180}]
type Vertex struct {
	Key  uint32
	Name string
	Cost int64
}

func (v Vertex) ID() uint32 { return v.Key }

// ParseVertices 解析顶点 JSON，标识符是否构成排列交给引擎检查
func ParseVertices(raw []byte) ([]Vertex, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "顶点文件不是合法的 JSON", nil)
	}
	list := gjson.ParseBytes(raw)
	if list.IsObject() {
		list = list.Get("vertices")
	}
	if !list.IsArray() {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "顶点文件需要是数组", nil)
	}

	var out []Vertex
	var parseErr error
	list.ForEach(func(key, v gjson.Result) bool {
		id := v.Get("id")
		if id.Type != gjson.Number || id.Num < 0 || id.Num > math.MaxUint32 || id.Num != math.Trunc(id.Num) {
			parseErr = errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
				fmt.Sprintf("第 %d 个顶点的 id 非法: %s", key.Int(), id.Raw), nil)
			return false
		}
		out = append(out, Vertex{
			Key:  uint32(id.Uint()),
			Name: v.Get("name").String(),
			Cost: v.Get("cost").Int(),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}

// LoadVertices 读取顶点文件
func LoadVertices(path string) ([]Vertex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
			fmt.Sprintf("无法读取顶点文件 %s", path), err)
	}
	return ParseVertices(raw)
}
