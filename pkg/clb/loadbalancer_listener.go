package clb

import (
	"strings"

	"yunion.io/x/pkg/errors"
)

type healthCheck struct {
	HealthSwitch    int    `json:"HealthSwitch"`
	TimeOut         int    `json:"TimeOut"`
	IntervalTime    int    `json:"IntervalTime"`
	HealthNum       int    `json:"HealthNum"`
	UnHealthNum     int    `json:"UnHealthNum"`
	HTTPCode        int    `json:"HttpCode"`
	HTTPCheckPath   string `json:"HttpCheckPath"`
	HTTPCheckDomain string `json:"HttpCheckDomain"`
	HTTPCheckMethod string `json:"HttpCheckMethod"`
}

type certificate struct {
	SSLMode  string `json:"SSLMode"`
	CERTCAID string `json:"CertCaId"`
	CERTID   string `json:"CertId"`
}

type SLBListenerRule struct {
	LocationID        string      `json:"LocationId"`
	Domain            string      `json:"Domain"`
	URL               string      `json:"Url"`
	Scheduler         string      `json:"Scheduler"`
	SessionExpireTime int64       `json:"SessionExpireTime"`
	HealthCheck       healthCheck `json:"HealthCheck"`
	Certificate       certificate `json:"Certificate"`
}

func (rule *SLBListenerRule) GetId() string {
	return rule.LocationID
}

type SLBListener struct {
	ListenerID        string            `json:"ListenerId"`
	ListenerName      string            `json:"ListenerName"`
	Protocol          string            `json:"Protocol"` // TCP | UDP | HTTP | HTTPS | TCP_SSL
	Port              int               `json:"Port"`
	Scheduler         string            `json:"Scheduler"`
	SessionExpireTime int               `json:"SessionExpireTime"`
	SniSwitch         int64             `json:"SniSwitch"`
	HealthCheck       healthCheck       `json:"HealthCheck"`
	Certificate       certificate       `json:"Certificate"`
	Rules             []SLBListenerRule `json:"Rules"` // 仅对 HTTP/HTTPS 监听器有意义
}

func (listener *SLBListener) GetId() string {
	return listener.ListenerID
}

func (listener *SLBListener) GetName() string {
	return listener.ListenerName
}

// http、https 监听器的后端挂在转发规则下，其余协议直接挂在监听器下
func (listener *SLBListener) IsL7() bool {
	switch strings.ToUpper(listener.Protocol) {
	case "HTTP", "HTTPS":
		return true
	default:
		return false
	}
}

func (listener *SLBListener) GetHealthCheck() string {
	if listener.HealthCheck.HealthSwitch == 0 {
		return "off"
	}
	return "on"
}

// https://cloud.tencent.com/document/product/214/30686
func (client *SClbClient) GetLoadbalancerListeners(lbid string, protocol string) ([]SLBListener, error) {
	if len(lbid) == 0 {
		return nil, errors.Errorf("loadbalancer id should not be empty")
	}

	params := map[string]string{"LoadBalancerId": lbid}
	if len(protocol) > 0 {
		params["Protocol"] = protocol
	}

	resp, err := client.clbRequest("DescribeListeners", params)
	if err != nil {
		return nil, errors.Wrap(err, "DescribeListeners")
	}

	listeners := []SLBListener{}
	err = resp.Unmarshal(&listeners, "Listeners")
	if err != nil {
		return nil, errors.Wrap(err, "Unmarshal Listeners")
	}

	return listeners, nil
}

func (client *SClbClient) GetLoadbalancerListenerRules(lbid string, listenerId string) ([]SLBListenerRule, error) {
	listeners, err := client.GetLoadbalancerListeners(lbid, "")
	if err != nil {
		return nil, err
	}

	for i := range listeners {
		if listeners[i].ListenerID == listenerId {
			return listeners[i].Rules, nil
		}
	}

	return nil, errors.Wrapf(errors.ErrNotFound, "listener %s", listenerId)
}
