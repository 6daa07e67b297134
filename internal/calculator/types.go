package calculator

// KeysRequest is the JSON body for key presses, e.g. {"keys":["5","+","3","="]}.
type KeysRequest struct {
	Keys []string `json:"keys"`
}
