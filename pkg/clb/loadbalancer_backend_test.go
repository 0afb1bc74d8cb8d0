package clb

import (
	"testing"
)

func testListenerBackends() []SListenerBackend {
	return []SListenerBackend{
		{
			ListenerID: "lbl-l7",
			Protocol:   "HTTPS",
			Port:       443,
			Rules: []backendRule{
				{
					LocationID: "loc-1",
					Domain:     "example.com",
					URL:        "/",
					Targets: []SLBBackend{
						{InstanceID: "ins-b", InstanceName: "web-2", PrivateIPAddresses: []string{"10.0.0.2"}, Port: 8080, Weight: 10},
						{InstanceID: "ins-a", InstanceName: "web-1", PrivateIPAddresses: []string{"10.0.0.1"}, Port: 8080, Weight: 10},
						{InstanceID: "ins-a", InstanceName: "web-1", PrivateIPAddresses: []string{"10.0.0.1"}, Port: 8081, Weight: 0},
					},
				},
			},
		},
		{
			ListenerID: "lbl-l4",
			Protocol:   "TCP",
			Port:       22,
			Targets: []SLBBackend{
				{InstanceID: "ins-a", InstanceName: "web-1", PrivateIPAddresses: []string{"10.0.0.1"}, Port: 22, Weight: 10},
			},
		},
	}
}

func TestAggregateBackends(t *testing.T) {
	instances := aggregateBackends(testListenerBackends())

	if len(instances) != 2 {
		t.Fatalf("instance count should be 2, got %d", len(instances))
	}

	// 按实例名排序
	if instances[0].InstanceName != "web-1" || instances[1].InstanceName != "web-2" {
		t.Errorf("instances should be sorted by name, got %s, %s", instances[0].InstanceName, instances[1].InstanceName)
	}

	web1 := instances[0]
	if web1.PortsAmount() != 3 {
		t.Errorf("web-1 should hold 3 port bindings, got %d", web1.PortsAmount())
	}
	if web1.PrivateIP != "10.0.0.1" {
		t.Errorf("web-1 private ip should be 10.0.0.1, got %s", web1.PrivateIP)
	}

	for _, port := range web1.Ports {
		if port.ListenerID == "lbl-l4" && port.LocationID != "" {
			t.Errorf("l4 binding should have empty location id, got %s", port.LocationID)
		}
		if port.ListenerID == "lbl-l7" && port.LocationID != "loc-1" {
			t.Errorf("l7 binding should carry rule location id, got %q", port.LocationID)
		}
	}
}

func TestPortWeightList(t *testing.T) {
	instance := SBackendInstance{
		Ports: []SPortWeight{
			{Port: 80, Weight: 10},
			{Port: 443, Weight: 0},
		},
	}
	if s := instance.PortWeightList(); s != "80[10] 443[0]" {
		t.Errorf("port weight list should be %q, got %q", "80[10] 443[0]", s)
	}
}

func TestCheckOthersLive(t *testing.T) {
	cases := []struct {
		name       string
		instances  []SBackendInstance
		instanceId string
		wantErr    bool
	}{
		{
			name: "other instance live",
			instances: []SBackendInstance{
				{InstanceID: "ins-a", Ports: []SPortWeight{{Port: 80, Weight: 10}}},
				{InstanceID: "ins-b", Ports: []SPortWeight{{Port: 80, Weight: 10}}},
			},
			instanceId: "ins-a",
			wantErr:    false,
		},
		{
			name: "all others offline",
			instances: []SBackendInstance{
				{InstanceID: "ins-a", Ports: []SPortWeight{{Port: 80, Weight: 10}}},
				{InstanceID: "ins-b", Ports: []SPortWeight{{Port: 80, Weight: 0}}},
			},
			instanceId: "ins-a",
			wantErr:    true,
		},
		{
			name: "single instance",
			instances: []SBackendInstance{
				{InstanceID: "ins-a", Ports: []SPortWeight{{Port: 80, Weight: 10}}},
			},
			instanceId: "ins-a",
			wantErr:    true,
		},
	}

	for _, c := range cases {
		err := checkOthersLive(c.instances, c.instanceId)
		if c.wantErr && err == nil {
			t.Errorf("%s: should refuse", c.name)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%s: should allow, got %v", c.name, err)
		}
	}
}

func TestFindBackendInstance(t *testing.T) {
	instances := aggregateBackends(testListenerBackends())

	if instance := findBackendInstance(instances, "ins-b"); instance == nil {
		t.Errorf("ins-b should be found")
	} else if instance.InstanceName != "web-2" {
		t.Errorf("ins-b name should be web-2, got %s", instance.InstanceName)
	}

	if instance := findBackendInstance(instances, "ins-x"); instance != nil {
		t.Errorf("ins-x should not be found")
	}
}

func TestBuildModifyWeightParams(t *testing.T) {
	ports := []SPortWeight{
		{ListenerID: "lbl-l7", LocationID: "loc-1", Port: 8080, Weight: 10},
		{ListenerID: "lbl-l7", LocationID: "loc-1", Port: 8081, Weight: 0},
		{ListenerID: "lbl-l4", Port: 22, Weight: 10},
	}

	params := buildModifyWeightParams("lb-123", "ins-a", ports, 0)

	expects := map[string]string{
		"LoadBalancerId":                    "lb-123",
		"ModifyList.0.ListenerId":           "lbl-l7",
		"ModifyList.0.LocationId":           "loc-1",
		"ModifyList.0.Weight":               "0",
		"ModifyList.0.Targets.0.InstanceId": "ins-a",
		"ModifyList.0.Targets.0.Port":       "8080",
		"ModifyList.0.Targets.1.InstanceId": "ins-a",
		"ModifyList.0.Targets.1.Port":       "8081",
		"ModifyList.1.ListenerId":           "lbl-l4",
		"ModifyList.1.Weight":               "0",
		"ModifyList.1.Targets.0.InstanceId": "ins-a",
		"ModifyList.1.Targets.0.Port":       "22",
	}
	for k, v := range expects {
		if params[k] != v {
			t.Errorf("params[%s] should be %q, got %q", k, v, params[k])
		}
	}

	if _, ok := params["ModifyList.1.LocationId"]; ok {
		t.Errorf("l4 group should not carry LocationId")
	}
}
