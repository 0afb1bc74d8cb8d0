package shell

import (
	"github.com/mrchi/tencentcloud-clb-helper/pkg/clb"
	"github.com/mrchi/tencentcloud-clb-helper/pkg/util/shellutils"
)

func init() {
	type ListenerListOptions struct {
		LB       string `help:"Loadbalancer ID"`
		Protocol string `help:"Filter by protocol" choices:"TCP|UDP|HTTP|HTTPS|TCP_SSL"`
	}
	shellutils.R(&ListenerListOptions{}, "listener-list", "List listeners of a loadbalancer", func(cli *clb.SClbClient, args *ListenerListOptions) error {
		listeners, err := cli.GetLoadbalancerListeners(args.LB, args.Protocol)
		if err != nil {
			return err
		}
		printList(listeners, 0, 0, 0, []string{"ListenerId", "ListenerName", "Protocol", "Port", "Scheduler"})
		return nil
	})

	type RuleListOptions struct {
		LB       string `help:"Loadbalancer ID"`
		LISTENER string `help:"Listener ID"`
	}
	shellutils.R(&RuleListOptions{}, "rule-list", "List forwarding rules of a listener", func(cli *clb.SClbClient, args *RuleListOptions) error {
		rules, err := cli.GetLoadbalancerListenerRules(args.LB, args.LISTENER)
		if err != nil {
			return err
		}
		printList(rules, 0, 0, 0, []string{"LocationId", "Domain", "Url", "Scheduler"})
		return nil
	})
}
