package http

import (
	_ "embed"
	"net/http"
)

//go:embed static/payment-success.html
var paymentSuccessPage []byte

func (c *Controller) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(paymentSuccessPage)
}
