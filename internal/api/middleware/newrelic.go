package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const NewRelicTransactionKey = "newRelicTransaction"

// NewRelic wraps each request in a New Relic web transaction named after the
// matched route. A nil app turns the middleware into a pass-through.
func NewRelic(app *newrelic.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app == nil {
			c.Next()
			return
		}

		name := c.FullPath()
		if name == "" {
			name = "unmatched"
		}
		txn := app.StartTransaction(c.Request.Method + " " + name)
		defer txn.End()

		txn.SetWebRequestHTTP(c.Request)
		c.Set(NewRelicTransactionKey, txn)

		c.Writer = &transactionWriter{
			ResponseWriter: c.Writer,
			txnWriter:      txn.SetWebResponse(nil),
		}

		c.Next()

		if requestID := GetRequestID(c); requestID != "" {
			txn.AddAttribute("requestId", requestID)
		}
		for _, err := range c.Errors {
			txn.NoticeError(err.Err)
		}
	}
}

// transactionWriter reports the response status code to the transaction
// while gin keeps writing the body itself.
type transactionWriter struct {
	gin.ResponseWriter
	txnWriter interface {
		WriteHeader(int)
	}
}

func (w *transactionWriter) WriteHeader(code int) {
	w.txnWriter.WriteHeader(code)
	w.ResponseWriter.WriteHeader(code)
}
