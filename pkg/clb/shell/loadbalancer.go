package shell

import (
	"github.com/mrchi/tencentcloud-clb-helper/pkg/clb"
	"github.com/mrchi/tencentcloud-clb-helper/pkg/util/shellutils"
)

func init() {
	type LoadbalancerListOptions struct {
		Limit  int `help:"page size"`
		Offset int `help:"page offset"`
	}
	shellutils.R(&LoadbalancerListOptions{}, "lb-list", "List loadbalancers", func(cli *clb.SClbClient, args *LoadbalancerListOptions) error {
		lbs, total, err := cli.GetLoadbalancers(args.Offset, args.Limit)
		if err != nil {
			return err
		}
		printList(lbs, total, args.Offset, args.Limit, []string{"LoadBalancerId", "Address", "Status", "LoadBalancerName"})
		return nil
	})

	type LoadbalancerShowOptions struct {
		ID string `help:"Loadbalancer ID"`
	}
	shellutils.R(&LoadbalancerShowOptions{}, "lb-show", "Show loadbalancer details", func(cli *clb.SClbClient, args *LoadbalancerShowOptions) error {
		lb, err := cli.GetLoadbalancer(args.ID)
		if err != nil {
			return err
		}
		printObject(lb)
		return nil
	})
}
