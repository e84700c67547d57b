package main

import (
	"sync"
	"time"
)

type commandContext struct {
	address string
	timeout time.Duration
	json    bool

	clientOnce sync.Once
	client     *apiClient
	clientErr  error
}

func (c *commandContext) api() (*apiClient, error) {
	c.clientOnce.Do(func() {
		c.client, c.clientErr = newAPIClient(c.address, c.timeout)
	})
	return c.client, c.clientErr
}
