package dto

// Res is the minimal envelope used by middleware rejections
type Res struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
}
