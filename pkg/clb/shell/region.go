package shell

import (
	"github.com/mrchi/tencentcloud-clb-helper/pkg/clb"
	"github.com/mrchi/tencentcloud-clb-helper/pkg/util/shellutils"
)

func init() {
	type RegionListOptions struct {
	}
	shellutils.R(&RegionListOptions{}, "region-list", "List regions", func(cli *clb.SClbClient, args *RegionListOptions) error {
		regions, err := cli.GetRegions()
		if err != nil {
			return err
		}
		printList(regions, 0, 0, 0, []string{})
		return nil
	})

	type BalanceShowOptions struct {
	}
	shellutils.R(&BalanceShowOptions{}, "balance-show", "Show account balance", func(cli *clb.SClbClient, args *BalanceShowOptions) error {
		balance, err := cli.QueryAccountBalance()
		if err != nil {
			return err
		}
		printObject(balance)
		return nil
	})
}
