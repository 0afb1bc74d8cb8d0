package clb

import (
	"strconv"

	"yunion.io/x/pkg/errors"
)

type LB_TYPE int64

const (
	LB_TYPE_CLASSIC     = LB_TYPE(0)
	LB_TYPE_APPLICATION = LB_TYPE(1)
)

const (
	LB_STATUS_CREATING = 0 // 创建中
	LB_STATUS_RUNNING  = 1 // 正常运行
)

// https://cloud.tencent.com/document/api/214/46916
type SLoadbalancer struct {
	LoadBalancerID   string   `json:"LoadBalancerId"`
	LoadBalancerName string   `json:"LoadBalancerName"`
	LoadBalancerType string   `json:"LoadBalancerType"` // OPEN | INTERNAL
	Status           int64    `json:"Status"`
	Address          string   `json:"Address"`
	AddressIPv6      string   `json:"AddressIPv6"`
	AddressIPVersion string   `json:"AddressIPVersion"`
	VpcID            string   `json:"VpcId"`
	Forward          LB_TYPE  `json:"Forward"`
	Zone             string   `json:"Zone"`
	Isolation        int64    `json:"Isolation"`
	CreateTime       string   `json:"CreateTime"`
	PrivateIPAddress string   `json:"PrivateIPAddress"`
	SecurityGroup    []string `json:"SecurityGroup"`
}

func (lb *SLoadbalancer) GetId() string {
	return lb.LoadBalancerID
}

func (lb *SLoadbalancer) GetName() string {
	return lb.LoadBalancerName
}

func (lb *SLoadbalancer) GetStatus() string {
	switch lb.Status {
	case LB_STATUS_CREATING:
		return "creating"
	case LB_STATUS_RUNNING:
		return "running"
	default:
		return "unknown"
	}
}

// 传统型负载均衡的后端管理走另一组接口，本工具不支持
func (lb *SLoadbalancer) IsApplication() bool {
	return lb.Forward == LB_TYPE_APPLICATION
}

func (lb *SLoadbalancer) GetAddress() string {
	if len(lb.Address) > 0 {
		return lb.Address
	}
	return lb.AddressIPv6
}

// https://cloud.tencent.com/document/api/214/46916
func (client *SClbClient) GetLoadbalancers(offset int, limit int) ([]SLoadbalancer, int, error) {
	if limit < 1 || limit > 100 {
		limit = 100
	}

	params := map[string]string{
		"Offset": strconv.Itoa(offset),
		"Limit":  strconv.Itoa(limit),
	}

	resp, err := client.clbRequest("DescribeLoadBalancersDetail", params)
	if err != nil {
		return nil, 0, errors.Wrap(err, "DescribeLoadBalancersDetail")
	}

	lbs := []SLoadbalancer{}
	err = resp.Unmarshal(&lbs, "LoadBalancerDetailSet")
	if err != nil {
		return nil, 0, errors.Wrap(err, "Unmarshal LoadBalancerDetailSet")
	}

	total, _ := resp.Int("TotalCount")
	return lbs, int(total), nil
}

func (client *SClbClient) GetLoadbalancer(lbid string) (*SLoadbalancer, error) {
	if len(lbid) == 0 {
		return nil, errors.Errorf("loadbalancer id should not be empty")
	}

	offset := 0
	for {
		lbs, total, err := client.GetLoadbalancers(offset, 100)
		if err != nil {
			return nil, err
		}
		for i := range lbs {
			if lbs[i].LoadBalancerID == lbid {
				return &lbs[i], nil
			}
		}
		offset += len(lbs)
		if offset >= total || len(lbs) == 0 {
			break
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "loadbalancer %s", lbid)
}
