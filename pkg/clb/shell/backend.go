package shell

import (
	"github.com/mrchi/tencentcloud-clb-helper/pkg/clb"
	"github.com/mrchi/tencentcloud-clb-helper/pkg/util/shellutils"
)

type backendInstanceRow struct {
	InstanceId   string
	InstanceName string
	PrivateIp    string
	PortsAmount  int
	PortWeights  string
}

var backendInstanceColumns = []string{"InstanceId", "InstanceName", "PrivateIp", "PortsAmount", "PortWeights"}

func printBackendInstances(cli *clb.SClbClient, lbid string) error {
	instances, err := cli.GetBackendInstances(lbid)
	if err != nil {
		return err
	}
	rows := make([]backendInstanceRow, len(instances))
	for i := range instances {
		rows[i] = backendInstanceRow{
			InstanceId:   instances[i].InstanceID,
			InstanceName: instances[i].InstanceName,
			PrivateIp:    instances[i].PrivateIP,
			PortsAmount:  instances[i].PortsAmount(),
			PortWeights:  instances[i].PortWeightList(),
		}
	}
	printList(rows, 0, 0, 0, backendInstanceColumns)
	return nil
}

func changeWeightAndShow(cli *clb.SClbClient, lbid string, change func() error) error {
	if err := printBackendInstances(cli, lbid); err != nil {
		return err
	}
	if err := change(); err != nil {
		return err
	}
	return printBackendInstances(cli, lbid)
}

func init() {
	type TargetListOptions struct {
		LB string `help:"Loadbalancer ID"`
	}
	shellutils.R(&TargetListOptions{}, "target-list", "List backend targets of a loadbalancer, aggregated by instance", func(cli *clb.SClbClient, args *TargetListOptions) error {
		return printBackendInstances(cli, args.LB)
	})

	type InstanceWeightOptions struct {
		LB       string `help:"Loadbalancer ID"`
		INSTANCE string `help:"Backend instance ID"`
	}
	shellutils.R(&InstanceWeightOptions{}, "instance-online", "Set weight 10 on all ports of a backend instance", func(cli *clb.SClbClient, args *InstanceWeightOptions) error {
		return changeWeightAndShow(cli, args.LB, func() error {
			return cli.OnlineInstance(args.LB, args.INSTANCE)
		})
	})

	shellutils.R(&InstanceWeightOptions{}, "instance-offline", "Set weight 0 on all ports of a backend instance", func(cli *clb.SClbClient, args *InstanceWeightOptions) error {
		return changeWeightAndShow(cli, args.LB, func() error {
			return cli.OfflineInstance(args.LB, args.INSTANCE)
		})
	})

	type TargetWeightSetOptions struct {
		LB       string `help:"Loadbalancer ID"`
		INSTANCE string `help:"Backend instance ID"`
		WEIGHT   int    `help:"Weight, 0-100"`
	}
	shellutils.R(&TargetWeightSetOptions{}, "target-weight-set", "Set a weight on all ports of a backend instance", func(cli *clb.SClbClient, args *TargetWeightSetOptions) error {
		return changeWeightAndShow(cli, args.LB, func() error {
			return cli.SetInstanceWeight(args.LB, args.INSTANCE, args.WEIGHT)
		})
	})
}
