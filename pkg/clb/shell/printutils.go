package shell

import "github.com/mrchi/tencentcloud-clb-helper/pkg/util/printutils"

func printList(data interface{}, total, offset, limit int, columns []string) {
	printutils.PrintInterfaceList(data, total, offset, limit, columns)
}

func printObject(obj interface{}) {
	printutils.PrintInterfaceObject(obj)
}
