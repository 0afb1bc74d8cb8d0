package clb

import (
	"time"

	"yunion.io/x/log"
	"yunion.io/x/pkg/errors"
)

const (
	TASK_STATUS_SUCCESS = 0
	TASK_STATUS_FAILED  = 1
	TASK_STATUS_DOING   = 2
)

// https://cloud.tencent.com/document/product/214/30683
func (client *SClbClient) GetTaskStatus(requestId string) (int, error) {
	params := map[string]string{"TaskId": requestId}

	resp, err := client.clbRequest("DescribeTaskStatus", params)
	if err != nil {
		return 0, errors.Wrap(err, "DescribeTaskStatus")
	}

	status, err := resp.Int("Status")
	if err != nil {
		return 0, errors.Wrap(err, "get Status")
	}

	return int(status), nil
}

func waitTaskSuccess(requestId string, getStatus func() (int, error), interval time.Duration, timeout time.Duration) error {
	start := time.Now()
	for time.Since(start) < timeout {
		status, err := getStatus()
		if err != nil {
			return err
		}

		switch status {
		case TASK_STATUS_SUCCESS:
			return nil
		case TASK_STATUS_FAILED:
			return errors.Errorf("task %s failed", requestId)
		default:
			log.Debugf("task %s still running, retry after %s", requestId, interval)
			time.Sleep(interval)
		}
	}

	return errors.Wrapf(errors.ErrTimeout, "task %s", requestId)
}

func (client *SClbClient) WaitTaskSuccess(requestId string) error {
	getStatus := func() (int, error) {
		return client.GetTaskStatus(requestId)
	}
	return waitTaskSuccess(requestId, getStatus, 3*time.Second, 60*time.Second)
}
