package clb

import "testing"

func TestApiDomain(t *testing.T) {
	cases := []struct {
		product string
		region  string
		want    string
	}{
		{"clb", "ap-shanghai", "clb.tencentcloudapi.com"},
		{"clb", "ap-shanghai-fsi", "clb.ap-shanghai-fsi.tencentcloudapi.com"},
		{"cvm", "ap-beijing", "cvm.tencentcloudapi.com"},
		{"billing", "", "billing.tencentcloudapi.com"},
	}

	for _, c := range cases {
		params := map[string]string{}
		if len(c.region) > 0 {
			params["Region"] = c.region
		}
		if got := apiDomain(c.product, params); got != c.want {
			t.Errorf("apiDomain(%s, %s) should be %s, got %s", c.product, c.region, c.want, got)
		}
	}
}

func TestNewClbClient(t *testing.T) {
	if _, err := NewClbClient("", "key", "", false); err == nil {
		t.Errorf("empty secret id should be rejected")
	}
	if _, err := NewClbClient("id", "", "", false); err == nil {
		t.Errorf("empty secret key should be rejected")
	}

	client, err := NewClbClient("id", "key", "", false)
	if err != nil {
		t.Fatalf("NewClbClient: %v", err)
	}
	if client.Region != DEFAULT_REGION {
		t.Errorf("region should default to %s, got %s", DEFAULT_REGION, client.Region)
	}
}
