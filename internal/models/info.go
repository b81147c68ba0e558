package models

// InfoRequest is the (empty) input of GET /api/info.
type InfoRequest struct{}

// InfoResponse is the payload of GET /api/info, available only when debug
// endpoints are enabled.
type InfoResponse struct {
	Hostname            string `json:"hostname"`
	RuntimeVersion      string `json:"runtimeVersion"`
	RuntimeVendor       string `json:"runtimeVendor"`
	OSName              string `json:"osName"`
	OSArch              string `json:"osArch"`
	AvailableProcessors int    `json:"availableProcessors"`
	HeapMemoryUsed      uint64 `json:"heapMemoryUsed"`
	HeapMemoryMax       uint64 `json:"heapMemoryMax"`
	Uptime              string `json:"uptime"`
	RequestCount        uint64 `json:"requestCount"`
	AppUptime           string `json:"appUptime"`
}
