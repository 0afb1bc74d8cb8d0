package printutils

import (
	"fmt"
	"sort"
	"strings"

	"yunion.io/x/jsonutils"
	"yunion.io/x/log"
)

func getColumns(list []jsonutils.JSONObject, columns []string) []string {
	if len(columns) > 0 {
		return columns
	}
	keys := make(map[string]bool)
	for _, obj := range list {
		objMap, err := obj.GetMap()
		if err != nil {
			continue
		}
		for k := range objMap {
			keys[k] = true
		}
	}
	columns = make([]string, 0, len(keys))
	for k := range keys {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

func cellString(obj jsonutils.JSONObject, key string) string {
	v, err := obj.Get(key)
	if err != nil {
		return ""
	}
	s, err := v.GetString()
	if err != nil {
		return v.String()
	}
	return s
}

func printTable(columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	sep := make([]string, len(columns))
	for i := range columns {
		sep[i] = strings.Repeat("-", widths[i]+2)
	}
	sepLine := "+" + strings.Join(sep, "+") + "+"

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
		}
		fmt.Println("|" + strings.Join(parts, "|") + "|")
	}

	fmt.Println(sepLine)
	printRow(columns)
	fmt.Println(sepLine)
	for _, row := range rows {
		printRow(row)
	}
	fmt.Println(sepLine)
}

func PrintJSONList(list []jsonutils.JSONObject, total, offset, limit int, columns []string) {
	columns = getColumns(list, columns)
	rows := make([][]string, len(list))
	for i, obj := range list {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = cellString(obj, c)
		}
		rows[i] = row
	}
	printTable(columns, rows)
	if total <= 0 {
		total = len(list)
	}
	title := fmt.Sprintf("Total: %d", total)
	if limit > 0 {
		pages := (total + limit - 1) / limit
		page := offset/limit + 1
		title = fmt.Sprintf("%s Pages: %d Limit: %d Page: %d", title, pages, limit, page)
	}
	fmt.Printf("*** %s ***\n", title)
}

func PrintInterfaceList(data interface{}, total, offset, limit int, columns []string) {
	jsonObj := jsonutils.Marshal(data)
	jsonArr, ok := jsonObj.(*jsonutils.JSONArray)
	if !ok {
		log.Errorf("PrintInterfaceList: data is not a list: %s", jsonObj)
		return
	}
	list, err := jsonArr.GetArray()
	if err != nil {
		log.Errorf("PrintInterfaceList: %v", err)
		return
	}
	PrintJSONList(list, total, offset, limit, columns)
}

func PrintJSONObject(obj jsonutils.JSONObject) {
	objMap, err := obj.GetMap()
	if err != nil {
		log.Errorf("PrintJSONObject: %v", err)
		return
	}
	keys := make([]string, 0, len(objMap))
	for k := range objMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, cellString(obj, k)}
	}
	printTable([]string{"Field", "Value"}, rows)
}

func PrintInterfaceObject(obj interface{}) {
	PrintJSONObject(jsonutils.Marshal(obj))
}
