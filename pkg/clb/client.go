package clb

import (
	"strings"
	"time"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	tchttp "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/http"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"

	"yunion.io/x/jsonutils"
	"yunion.io/x/log"
	"yunion.io/x/pkg/errors"
)

const (
	DEFAULT_REGION = "ap-shanghai"

	CLB_API_VERSION     = "2018-03-17"
	CVM_API_VERSION     = "2017-03-12"
	BILLING_API_VERSION = "2018-07-09"
)

type SClbClient struct {
	SecretID  string
	SecretKey string
	Region    string
	Debug     bool
}

func NewClbClient(secretID string, secretKey string, region string, debug bool) (*SClbClient, error) {
	if len(secretID) == 0 {
		return nil, errors.Errorf("empty secret id")
	}
	if len(secretKey) == 0 {
		return nil, errors.Errorf("empty secret key")
	}
	if len(region) == 0 {
		region = DEFAULT_REGION
	}
	return &SClbClient{SecretID: secretID, SecretKey: secretKey, Region: region, Debug: debug}, nil
}

// 部分接口支持金融区地域。金融区和非金融区是隔离不互通的，因此当公共参数 Region 为金融区地域
// （例如 ap-shanghai-fsi）时，需要同时指定带金融区地域的域名。
// https://cloud.tencent.com/document/product/416/6479
func apiDomain(product string, params map[string]string) string {
	region, ok := params["Region"]
	if ok && strings.HasSuffix(region, "-fsi") {
		return product + "." + region + ".tencentcloudapi.com"
	} else {
		return product + ".tencentcloudapi.com"
	}
}

type QcloudResponse struct {
	*tchttp.BaseResponse
	Response *interface{} `json:"Response"`
}

func (r *QcloudResponse) GetResponse() *interface{} {
	return r.Response
}

func _jsonRequest(client *common.Client, domain string, version string, apiName string, params map[string]string, debug bool) (jsonutils.JSONObject, error) {
	req := &tchttp.BaseRequest{}
	if region, ok := params["Region"]; ok {
		client = client.Init(region)
	}
	client.WithProfile(profile.NewClientProfile())
	service := strings.Split(domain, ".")[0]
	req.Init().WithApiInfo(service, version, apiName)
	req.SetDomain(domain)

	for k, v := range params {
		req.GetParams()[k] = v
	}

	resp := &QcloudResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}

	for i := 1; i <= 3; i++ {
		err := client.Send(req, resp)
		if err == nil {
			break
		}
		needRetry := false
		for _, msg := range []string{"EOF", "TLS handshake timeout", "Code=InternalError", "retry later", "Code=MutexOperation.TaskRunning"} {
			if strings.Contains(err.Error(), msg) {
				needRetry = true
				break
			}
		}
		if needRetry && i != 3 {
			log.Errorf("request url %s\nparams: %s\nerror: %v\nafter %d second try again", req.GetDomain(), jsonutils.Marshal(req.GetParams()).PrettyString(), err, i*10)
			time.Sleep(time.Second * time.Duration(i*10))
			continue
		}
		log.Errorf("request url: %s\nparams: %s\nerror: %v", req.GetDomain(), jsonutils.Marshal(req.GetParams()).PrettyString(), err)
		return nil, err
	}
	body := jsonutils.Marshal(resp.GetResponse())
	if debug {
		log.Debugf("%s response: %s", apiName, body.PrettyString())
	}
	return body, nil
}

func (client *SClbClient) getDefaultClient() (*common.Client, error) {
	return common.NewClientWithSecretId(client.SecretID, client.SecretKey, client.Region)
}

func (client *SClbClient) request(product string, version string, apiName string, params map[string]string) (jsonutils.JSONObject, error) {
	cli, err := client.getDefaultClient()
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]string{}
	}
	if _, ok := params["Region"]; !ok {
		params["Region"] = client.Region
	}
	domain := apiDomain(product, params)
	return _jsonRequest(cli, domain, version, apiName, params, client.Debug)
}

// loadbalancer服务
func (client *SClbClient) clbRequest(apiName string, params map[string]string) (jsonutils.JSONObject, error) {
	return client.request("clb", CLB_API_VERSION, apiName, params)
}

func (client *SClbClient) cvmRequest(apiName string, params map[string]string) (jsonutils.JSONObject, error) {
	return client.request("cvm", CVM_API_VERSION, apiName, params)
}

func (client *SClbClient) billingRequest(apiName string, params map[string]string) (jsonutils.JSONObject, error) {
	return client.request("billing", BILLING_API_VERSION, apiName, params)
}

type SRegion struct {
	Region      string
	RegionName  string
	RegionState string
}

func (client *SClbClient) GetRegions() ([]SRegion, error) {
	body, err := client.cvmRequest("DescribeRegions", nil)
	if err != nil {
		return nil, errors.Wrap(err, "DescribeRegions")
	}
	regions := make([]SRegion, 0)
	err = body.Unmarshal(&regions, "RegionSet")
	if err != nil {
		return nil, errors.Wrap(err, "Unmarshal RegionSet")
	}
	return regions, nil
}

type SAccountBalance struct {
	AvailableAmount float64
	Currency        string
}

func (client *SClbClient) QueryAccountBalance() (*SAccountBalance, error) {
	body, err := client.billingRequest("DescribeAccountBalance", nil)
	if err != nil {
		return nil, errors.Wrap(err, "DescribeAccountBalance")
	}
	balance := SAccountBalance{Currency: "CNY"}
	balanceCent, _ := body.Float("Balance")
	balance.AvailableAmount = balanceCent / 100.0
	return &balance, nil
}
