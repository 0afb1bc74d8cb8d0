package clb

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"yunion.io/x/pkg/errors"
)

const (
	BACKEND_WEIGHT_ONLINE  = 10
	BACKEND_WEIGHT_OFFLINE = 0
)

type SLBBackend struct {
	InstanceID         string   `json:"InstanceId"`
	InstanceName       string   `json:"InstanceName"`
	PrivateIPAddresses []string `json:"PrivateIpAddresses"`
	PublicIPAddresses  []string `json:"PublicIpAddresses"`
	Port               int      `json:"Port"`
	Weight             int      `json:"Weight"`
	RegisteredTime     string   `json:"RegisteredTime"`
	Type               string   `json:"Type"`
}

type backendRule struct {
	LocationID string       `json:"LocationId"`
	Domain     string       `json:"Domain"`
	URL        string       `json:"Url"`
	Targets    []SLBBackend `json:"Targets"`
}

type SListenerBackend struct {
	ListenerID string        `json:"ListenerId"`
	Protocol   string        `json:"Protocol"`
	Port       int64         `json:"Port"`
	Rules      []backendRule `json:"Rules"`
	Targets    []SLBBackend  `json:"Targets"`
}

// https://cloud.tencent.com/document/product/214/30684
func (client *SClbClient) GetListenerBackends(lbid string) ([]SListenerBackend, error) {
	if len(lbid) == 0 {
		return nil, errors.Errorf("loadbalancer id should not be empty")
	}

	params := map[string]string{"LoadBalancerId": lbid}

	resp, err := client.clbRequest("DescribeTargets", params)
	if err != nil {
		return nil, errors.Wrap(err, "DescribeTargets")
	}

	lbackends := []SListenerBackend{}
	err = resp.Unmarshal(&lbackends, "Listeners")
	if err != nil {
		return nil, errors.Wrap(err, "Unmarshal Listeners")
	}

	return lbackends, nil
}

// 单个端口在某监听器/转发规则下的挂载点
type SPortWeight struct {
	ListenerID string
	LocationID string // 仅七层规则有值
	Port       int
	Weight     int
}

// 某后端实例在一个负载均衡下的全部挂载端口。按 PrivateIP 聚合，不用
// InstanceName 聚合，防止实例重名。
type SBackendInstance struct {
	InstanceID   string
	InstanceName string
	PrivateIP    string
	Ports        []SPortWeight
}

func (instance *SBackendInstance) PortsAmount() int {
	return len(instance.Ports)
}

// "80[10] 443[0]" 形式的端口权重描述
func (instance *SBackendInstance) PortWeightList() string {
	parts := make([]string, len(instance.Ports))
	for i, port := range instance.Ports {
		parts[i] = fmt.Sprintf("%d[%d]", port.Port, port.Weight)
	}
	return strings.Join(parts, " ")
}

func (instance *SBackendInstance) HasLiveWeight() bool {
	for _, port := range instance.Ports {
		if port.Weight > 0 {
			return true
		}
	}
	return false
}

func appendBackends(instances map[string]*SBackendInstance, targets []SLBBackend, listenerId string, locationId string) {
	for i := range targets {
		target := targets[i]
		if len(target.PrivateIPAddresses) == 0 {
			continue
		}
		privateIp := target.PrivateIPAddresses[0]
		instance, ok := instances[privateIp]
		if !ok {
			instance = &SBackendInstance{
				InstanceID:   target.InstanceID,
				InstanceName: target.InstanceName,
				PrivateIP:    privateIp,
			}
			instances[privateIp] = instance
		}
		instance.Ports = append(instance.Ports, SPortWeight{
			ListenerID: listenerId,
			LocationID: locationId,
			Port:       target.Port,
			Weight:     target.Weight,
		})
	}
}

// 展开全部监听器和转发规则，按后端实例聚合，按实例名排序
func (client *SClbClient) GetBackendInstances(lbid string) ([]SBackendInstance, error) {
	lbackends, err := client.GetListenerBackends(lbid)
	if err != nil {
		return nil, err
	}
	return aggregateBackends(lbackends), nil
}

func aggregateBackends(lbackends []SListenerBackend) []SBackendInstance {
	instanceMap := make(map[string]*SBackendInstance)
	for i := range lbackends {
		entry := lbackends[i]
		appendBackends(instanceMap, entry.Targets, entry.ListenerID, "")
		for j := range entry.Rules {
			rule := entry.Rules[j]
			appendBackends(instanceMap, rule.Targets, entry.ListenerID, rule.LocationID)
		}
	}

	instances := make([]SBackendInstance, 0, len(instanceMap))
	for _, instance := range instanceMap {
		instances = append(instances, *instance)
	}
	sort.Slice(instances, func(i, j int) bool {
		return instances[i].InstanceName < instances[j].InstanceName
	})
	return instances
}

func findBackendInstance(instances []SBackendInstance, instanceId string) *SBackendInstance {
	for i := range instances {
		if instances[i].InstanceID == instanceId {
			return &instances[i]
		}
	}
	return nil
}

// 下线前必须确认其余实例仍有权重大于 0 的端口，否则服务全挂
func checkOthersLive(instances []SBackendInstance, instanceId string) error {
	for i := range instances {
		if instances[i].InstanceID == instanceId {
			continue
		}
		if instances[i].HasLiveWeight() {
			return nil
		}
	}
	return errors.Errorf("all other instances are offline, refuse to offline %s", instanceId)
}

// BatchModifyTargetWeight 按（监听器, 转发规则）分组提交
func buildModifyWeightParams(lbid string, instanceId string, ports []SPortWeight, weight int) map[string]string {
	params := map[string]string{"LoadBalancerId": lbid}

	type ruleKey struct {
		listenerId string
		locationId string
	}
	groups := make(map[ruleKey][]SPortWeight)
	keys := []ruleKey{}
	for _, port := range ports {
		key := ruleKey{listenerId: port.ListenerID, locationId: port.LocationID}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], port)
	}

	for i, key := range keys {
		prefix := fmt.Sprintf("ModifyList.%d.", i)
		params[prefix+"ListenerId"] = key.listenerId
		if len(key.locationId) > 0 {
			params[prefix+"LocationId"] = key.locationId
		}
		params[prefix+"Weight"] = strconv.Itoa(weight)
		for j, port := range groups[key] {
			params[fmt.Sprintf("%sTargets.%d.InstanceId", prefix, j)] = instanceId
			params[fmt.Sprintf("%sTargets.%d.Port", prefix, j)] = strconv.Itoa(port.Port)
		}
	}

	return params
}

// https://cloud.tencent.com/document/product/214/30678
// 返回 RequestId，供 DescribeTaskStatus 轮询
func (client *SClbClient) batchModifyTargetWeight(lbid string, instanceId string, ports []SPortWeight, weight int) (string, error) {
	params := buildModifyWeightParams(lbid, instanceId, ports, weight)

	resp, err := client.clbRequest("BatchModifyTargetWeight", params)
	if err != nil {
		return "", errors.Wrap(err, "BatchModifyTargetWeight")
	}

	return resp.GetString("RequestId")
}

// 修改某实例在负载均衡下全部端口的权重，等待任务结束
func (client *SClbClient) SetInstanceWeight(lbid string, instanceId string, weight int) error {
	if weight < 0 || weight > 100 {
		return errors.Errorf("invalid weight %d, should be 0-100", weight)
	}

	instances, err := client.GetBackendInstances(lbid)
	if err != nil {
		return err
	}

	instance := findBackendInstance(instances, instanceId)
	if instance == nil {
		return errors.Wrapf(errors.ErrNotFound, "instance %s not registered to loadbalancer %s", instanceId, lbid)
	}

	if weight == BACKEND_WEIGHT_OFFLINE {
		if err := checkOthersLive(instances, instanceId); err != nil {
			return err
		}
	}

	requestId, err := client.batchModifyTargetWeight(lbid, instanceId, instance.Ports, weight)
	if err != nil {
		return err
	}

	return client.WaitTaskSuccess(requestId)
}

func (client *SClbClient) OnlineInstance(lbid string, instanceId string) error {
	return client.SetInstanceWeight(lbid, instanceId, BACKEND_WEIGHT_ONLINE)
}

func (client *SClbClient) OfflineInstance(lbid string, instanceId string) error {
	return client.SetInstanceWeight(lbid, instanceId, BACKEND_WEIGHT_OFFLINE)
}
