package currency

// AmountRequest is the JSON body for PUT /currency/amount.
type AmountRequest struct {
	Amount string `json:"amount"`
}

// CodeRequest is the JSON body for PUT /currency/from and /currency/to.
type CodeRequest struct {
	Code string `json:"code"`
}
